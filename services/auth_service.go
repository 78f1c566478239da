package services

import (
	"errors"
	"regexp"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"KidSafe/models"
	"KidSafe/repositories"
)

const sessionTTL = 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrWrongPIN           = errors.New("incorrect PIN")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Claims is the session token payload for both user classes. UserType is
// "parent" or "child"; SessionID is set only on child tokens and points at
// the revocable ChildSession row.
type Claims struct {
	UserID    string `json:"user_id"`
	UserType  string `json:"user_type"`
	SessionID string `json:"session_id,omitempty"`
	jwt.RegisteredClaims
}

// ChildSessionPayload is the document the browser persists after a
// successful device login: the device row, the joined child row and the
// server-issued session token. Presenting it back is how child routes are
// accessed. The json key "children" matches the joined-row shape the
// dashboard stores.
type ChildSessionPayload struct {
	Device models.Device `json:"device"`
	Child  models.Child  `json:"children"`
	Token  string        `json:"token"`
}

type AuthService struct {
	ParentRepo       repositories.ParentRepository
	ChildRepo        repositories.ChildRepository
	DeviceRepo       repositories.DeviceRepository
	SessionRepo      repositories.ChildSessionRepository
	AlertSettingRepo repositories.AlertSettingRepository
	AppSettingRepo   repositories.AppSettingRepository
	JWTKey           []byte
}

func NewAuthService(
	parentRepo repositories.ParentRepository,
	childRepo repositories.ChildRepository,
	deviceRepo repositories.DeviceRepository,
	sessionRepo repositories.ChildSessionRepository,
	alertSettingRepo repositories.AlertSettingRepository,
	appSettingRepo repositories.AppSettingRepository,
	jwtKey []byte,
) *AuthService {
	return &AuthService{
		ParentRepo:       parentRepo,
		ChildRepo:        childRepo,
		DeviceRepo:       deviceRepo,
		SessionRepo:      sessionRepo,
		AlertSettingRepo: alertSettingRepo,
		AppSettingRepo:   appSettingRepo,
		JWTKey:           jwtKey,
	}
}

// SignupParent validates the signup form, creates the parent account and
// seeds its default alert and app settings. Returns the parent and a session
// token; the caller decides whether a confirmation step applies.
func (s *AuthService) SignupParent(name, email, password, confirm string) (models.Parent, string, error) {
	if name == "" {
		return models.Parent{}, "", errors.New("name is required")
	}
	if !emailPattern.MatchString(email) {
		return models.Parent{}, "", errors.New("invalid email address")
	}
	if len(password) < 6 {
		return models.Parent{}, "", errors.New("password must be at least 6 characters")
	}
	if password != confirm {
		return models.Parent{}, "", errors.New("passwords do not match")
	}

	var count int64
	if err := s.ParentRepo.CountByEmail(email, &count); err != nil {
		return models.Parent{}, "", err
	}
	if count > 0 {
		return models.Parent{}, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Parent{}, "", err
	}

	prefs, _ := json.Marshal(models.NotificationPreferences{Email: true, Push: true})

	parent := models.Parent{
		ID:                      uuid.NewString(),
		Email:                   email,
		Name:                    name,
		PasswordHash:            string(hashed),
		NotificationPreferences: string(prefs),
	}
	if err := s.ParentRepo.Save(parent); err != nil {
		return models.Parent{}, "", err
	}

	// Seed defaults so the settings pages have rows to show.
	for _, setting := range models.DefaultAlertSettings(parent.ID) {
		setting.ID = uuid.NewString()
		if err := s.AlertSettingRepo.Save(setting); err != nil {
			return models.Parent{}, "", err
		}
	}
	appSetting := models.DefaultAppSetting(parent.ID)
	appSetting.ID = uuid.NewString()
	if err := s.AppSettingRepo.Save(appSetting); err != nil {
		return models.Parent{}, "", err
	}

	token, err := s.issueToken(parent.ID, "parent", "")
	if err != nil {
		return models.Parent{}, "", err
	}
	return parent, token, nil
}

func (s *AuthService) LoginParent(email, password string) (models.Parent, string, error) {
	parent, err := s.ParentRepo.FindByEmail(email)
	if err != nil {
		return models.Parent{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(parent.PasswordHash), []byte(password)); err != nil {
		return models.Parent{}, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(parent.ID, "parent", "")
	if err != nil {
		return models.Parent{}, "", err
	}
	return parent, token, nil
}

// LoginChild authenticates a device by its opaque device_id plus the owning
// child's PIN. A child with no PIN set accepts any PIN. Nothing is persisted
// on failure; on success the device is marked active and a revocable child
// session is created.
func (s *AuthService) LoginChild(deviceID, pin string) (ChildSessionPayload, error) {
	device, err := s.DeviceRepo.FindByDeviceID(deviceID)
	if err != nil {
		return ChildSessionPayload{}, ErrDeviceNotFound
	}

	child, err := s.ChildRepo.FindByID(device.ChildID)
	if err != nil {
		return ChildSessionPayload{}, ErrDeviceNotFound
	}

	if child.PIN != "" && child.PIN != pin {
		return ChildSessionPayload{}, ErrWrongPIN
	}

	now := time.Now()
	device.IsActive = true
	device.LastActive = &now
	if err := s.DeviceRepo.Save(device); err != nil {
		return ChildSessionPayload{}, err
	}

	session := models.ChildSession{
		ID:        uuid.NewString(),
		ChildID:   child.ID,
		DeviceID:  device.ID,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := s.SessionRepo.Save(session); err != nil {
		return ChildSessionPayload{}, err
	}

	token, err := s.issueToken(child.ID, "child", session.ID)
	if err != nil {
		return ChildSessionPayload{}, err
	}

	return ChildSessionPayload{Device: device, Child: child, Token: token}, nil
}

// LogoutChild revokes the session behind the stored payload. Unknown session
// IDs are fine: logout of a dead session is a no-op.
func (s *AuthService) LogoutChild(sessionID string) error {
	session, err := s.SessionRepo.FindByID(sessionID)
	if err != nil {
		return nil
	}
	session.Revoked = true
	return s.SessionRepo.Save(session)
}

// VerifyParentToken parses a session token and returns its claims when it is
// a valid, unexpired parent token.
func (s *AuthService) VerifyParentToken(tokenString string) (Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return Claims{}, err
	}
	if claims.UserType != "parent" {
		return Claims{}, errors.New("not a parent token")
	}
	return claims, nil
}

// VerifyChildToken additionally checks the server-side session row, so child
// sessions expire and can be revoked regardless of what the client stored.
func (s *AuthService) VerifyChildToken(tokenString string) (Claims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return Claims{}, err
	}
	if claims.UserType != "child" || claims.SessionID == "" {
		return Claims{}, errors.New("not a child token")
	}

	session, err := s.SessionRepo.FindByID(claims.SessionID)
	if err != nil {
		return Claims{}, errors.New("session not found")
	}
	if !session.Valid(time.Now()) {
		return Claims{}, errors.New("session expired or revoked")
	}
	return claims, nil
}

// SessionContext returns the device and child rows behind a child session.
func (s *AuthService) SessionContext(sessionID string) (models.Device, models.Child, error) {
	session, err := s.SessionRepo.FindByID(sessionID)
	if err != nil {
		return models.Device{}, models.Child{}, errors.New("session not found")
	}
	device, err := s.DeviceRepo.FindByID(session.DeviceID)
	if err != nil {
		return models.Device{}, models.Child{}, ErrDeviceNotFound
	}
	child, err := s.ChildRepo.FindByID(session.ChildID)
	if err != nil {
		return models.Device{}, models.Child{}, errors.New("child not found")
	}
	return device, child, nil
}

// ParseChildPayload decodes the locally-stored device/child document and
// verifies the token inside it. Any parse or verification failure
// invalidates the whole payload.
func (s *AuthService) ParseChildPayload(raw string) (ChildSessionPayload, error) {
	var payload ChildSessionPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ChildSessionPayload{}, err
	}
	if payload.Device.ID == "" || payload.Child.ID == "" {
		return ChildSessionPayload{}, errors.New("incomplete child session payload")
	}
	if _, err := s.VerifyChildToken(payload.Token); err != nil {
		return ChildSessionPayload{}, err
	}
	return payload, nil
}

func (s *AuthService) issueToken(userID, userType, sessionID string) (string, error) {
	claims := &Claims{
		UserID:    userID,
		UserType:  userType,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.JWTKey)
}

func (s *AuthService) parseToken(tokenString string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.JWTKey, nil
	})
	if err != nil {
		return Claims{}, err
	}
	if !token.Valid {
		return Claims{}, errors.New("invalid token")
	}
	return claims, nil
}
