package config

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"KidSafe/models"
)

var (
	DB     *gorm.DB
	Logger *zap.Logger
	FCM    *messaging.Client
)

func InitLogger() {
	var err error
	if os.Getenv("APP_ENV") == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
}

func InitDatabase() {
	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	port := os.Getenv("DB_PORT")

	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		Logger.Fatal("failed to connect to database", zap.Error(err))
	}

	Logger.Info("connected to database", zap.String("host", host), zap.String("dbname", dbname))

	err = DB.AutoMigrate(
		&models.Parent{},
		&models.Child{},
		&models.Device{},
		&models.ContentRule{},
		&models.UsageLog{},
		&models.BlockedAttempt{},
		&models.Alert{},
		&models.AlertSetting{},
		&models.AppSetting{},
		&models.ChildSession{},
	)
	if err != nil {
		Logger.Fatal("auto migration failed", zap.Error(err))
	}
}

// InitMessaging sets up the Firebase Cloud Messaging client used for push
// delivery of alerts. Push is optional: without credentials the service runs
// with push disabled.
func InitMessaging() {
	credPath := os.Getenv("FIREBASE_CREDENTIALS_PATH")
	if credPath == "" {
		Logger.Warn("FIREBASE_CREDENTIALS_PATH not set, push notifications disabled")
		return
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credPath))
	if err != nil {
		Logger.Fatal("error initializing firebase app", zap.Error(err))
	}

	FCM, err = app.Messaging(ctx)
	if err != nil {
		Logger.Fatal("error getting messaging client", zap.Error(err))
	}
}

// JWTSecret returns the HMAC key used to sign session tokens.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "kidsafe-dev-secret"
	}
	return []byte(secret)
}
