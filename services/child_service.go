package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"KidSafe/models"
	"KidSafe/repositories"
)

var (
	ErrNotOwned     = errors.New("child does not belong to this parent")
	ErrInvalidPIN   = errors.New("PIN must be 4 to 6 digits")
	ErrInvalidLimit = errors.New("daily limit must be between 30 and 480 minutes")
	ErrInvalidTime  = errors.New("time must be in HH:MM format")
)

var pinPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// Daily limit bounds, matching the dashboard slider.
const (
	minDailyLimit = 30
	maxDailyLimit = 480
)

// UsageEntry is one usage session reported by a device agent.
type UsageEntry struct {
	AppName   string     `json:"app_name" binding:"required"`
	URL       string     `json:"url"`
	Category  string     `json:"category"`
	Duration  int        `json:"duration" binding:"required,min=1"`
	StartTime time.Time  `json:"start_time" binding:"required"`
	EndTime   *time.Time `json:"end_time"`
}

type ChildService struct {
	ChildRepo   repositories.ChildRepository
	UsageRepo   repositories.UsageLogRepository
	AttemptRepo repositories.BlockedAttemptRepository
	Rules       *RuleService
	Alerts      *AlertService
	Logger      *zap.Logger
}

func NewChildService(
	childRepo repositories.ChildRepository,
	usageRepo repositories.UsageLogRepository,
	attemptRepo repositories.BlockedAttemptRepository,
	rules *RuleService,
	alerts *AlertService,
	logger *zap.Logger,
) *ChildService {
	return &ChildService{
		ChildRepo:   childRepo,
		UsageRepo:   usageRepo,
		AttemptRepo: attemptRepo,
		Rules:       rules,
		Alerts:      alerts,
		Logger:      logger,
	}
}

func (s *ChildService) ListChildren(parentID string) ([]models.Child, error) {
	return s.ChildRepo.FindByParentID(parentID)
}

// GetChild loads a child and enforces ownership.
func (s *ChildService) GetChild(parentID, childID string) (models.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, ErrChildNotFound
	}
	if child.ParentID != parentID {
		return models.Child{}, ErrNotOwned
	}
	return child, nil
}

func (s *ChildService) CreateChild(parentID, name string, age int, pin string) (models.Child, error) {
	if name == "" {
		return models.Child{}, errors.New("name is required")
	}
	if pin != "" && !pinPattern.MatchString(pin) {
		return models.Child{}, ErrInvalidPIN
	}

	child := models.Child{
		ID:             uuid.NewString(),
		ParentID:       parentID,
		Name:           name,
		Age:            age,
		PIN:            pin,
		DailyLimit:     180,
		Status:         models.StatusActive,
		BedtimeStart:   "21:00",
		BedtimeEnd:     "07:00",
		BedtimeEnabled: true,
	}
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (s *ChildService) UpdateChild(parentID, childID, name string, age int, avatarURL, pin string) (models.Child, error) {
	child, err := s.GetChild(parentID, childID)
	if err != nil {
		return models.Child{}, err
	}

	if name != "" {
		child.Name = name
	}
	if age > 0 {
		child.Age = age
	}
	if avatarURL != "" {
		child.AvatarURL = avatarURL
	}
	if pin != "" {
		if !pinPattern.MatchString(pin) {
			return models.Child{}, ErrInvalidPIN
		}
		child.PIN = pin
	}

	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	return child, nil
}

// UpdateTimeSettings validates and saves the daily limit and the bedtime
// window. Validation happens before any persistence call.
func (s *ChildService) UpdateTimeSettings(parentID, childID string, dailyLimit int, bedtimeStart, bedtimeEnd string, bedtimeEnabled bool) (models.Child, error) {
	child, err := s.GetChild(parentID, childID)
	if err != nil {
		return models.Child{}, err
	}

	if dailyLimit < minDailyLimit || dailyLimit > maxDailyLimit {
		return models.Child{}, ErrInvalidLimit
	}
	if bedtimeEnabled && (!ValidClock(bedtimeStart) || !ValidClock(bedtimeEnd)) {
		return models.Child{}, ErrInvalidTime
	}

	child.DailyLimit = dailyLimit
	child.BedtimeStart = bedtimeStart
	child.BedtimeEnd = bedtimeEnd
	child.BedtimeEnabled = bedtimeEnabled

	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	return child, nil
}

// SetStatus locks or unlocks a child profile.
func (s *ChildService) SetStatus(parentID, childID, status string) (models.Child, error) {
	switch status {
	case models.StatusActive, models.StatusOffline, models.StatusRestricted, models.StatusLocked:
	default:
		return models.Child{}, fmt.Errorf("invalid status %q", status)
	}

	child, err := s.GetChild(parentID, childID)
	if err != nil {
		return models.Child{}, err
	}
	child.Status = status
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (s *ChildService) DeleteChild(parentID, childID string) error {
	child, err := s.GetChild(parentID, childID)
	if err != nil {
		return err
	}
	return s.ChildRepo.Delete(child)
}

// RecordUsage stores the reported sessions and bumps the child's counters.
// Crossing the daily limit raises an urgent time_limit alert; sessions with
// no category raise an unknown_app alert. Alert failures do not fail the
// ingest.
func (s *ChildService) RecordUsage(childID, deviceRowID string, entries []UsageEntry) (models.Child, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.Child{}, ErrChildNotFound
	}

	wasOverLimit := child.DailyLimit > 0 && child.TimeUsed >= child.DailyLimit

	now := time.Now()
	for _, entry := range entries {
		log := models.UsageLog{
			ID:        uuid.NewString(),
			ChildID:   child.ID,
			DeviceID:  deviceRowID,
			AppName:   entry.AppName,
			URL:       entry.URL,
			Category:  entry.Category,
			Duration:  entry.Duration,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
		}
		if err := s.UsageRepo.Create(log); err != nil {
			return models.Child{}, err
		}
		child.TimeUsed += entry.Duration

		if entry.Category == "" {
			if _, err := s.Alerts.Raise(child.ParentID, child.ID, models.AlertUnknownApp,
				fmt.Sprintf("%s used an unrecognized app: %s", child.Name, entry.AppName), false); err != nil {
				s.Logger.Warn("unknown_app alert dropped",
					zap.String("child_id", child.ID), zap.Error(err))
			}
		}
	}

	child.LastActive = &now
	if err := s.ChildRepo.Save(child); err != nil {
		return models.Child{}, err
	}

	nowOverLimit := child.DailyLimit > 0 && child.TimeUsed >= child.DailyLimit
	if nowOverLimit && !wasOverLimit {
		if _, err := s.Alerts.Raise(child.ParentID, child.ID, models.AlertTimeLimit,
			fmt.Sprintf("%s reached the daily screen time limit", child.Name), true); err != nil {
			s.Logger.Warn("time_limit alert dropped",
				zap.String("child_id", child.ID), zap.Error(err))
		}
	}

	return child, nil
}

// RecordBlockedAttempt stores a denied access attempt with a reason derived
// from the child's content rules, and raises an inappropriate_content alert
// when a rule actually matched.
func (s *ChildService) RecordBlockedAttempt(childID, deviceRowID, url, appName, category string) (models.BlockedAttempt, error) {
	child, err := s.ChildRepo.FindByID(childID)
	if err != nil {
		return models.BlockedAttempt{}, ErrChildNotFound
	}

	matched, reason, err := s.Rules.EvaluateAttempt(childID, url, category)
	if err != nil {
		return models.BlockedAttempt{}, err
	}

	attempt := models.BlockedAttempt{
		ID:        uuid.NewString(),
		ChildID:   childID,
		DeviceID:  deviceRowID,
		URL:       url,
		AppName:   appName,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if err := s.AttemptRepo.Create(attempt); err != nil {
		return models.BlockedAttempt{}, err
	}

	if matched {
		target := url
		if target == "" {
			target = appName
		}
		if _, err := s.Alerts.Raise(child.ParentID, child.ID, models.AlertInappropriateContent,
			fmt.Sprintf("%s tried to access blocked content: %s", child.Name, target), true); err != nil {
			s.Logger.Warn("inappropriate_content alert dropped",
				zap.String("child_id", child.ID), zap.Error(err))
		}
	}

	return attempt, nil
}

// BlockedAttempts lists the newest denials for a child.
func (s *ChildService) BlockedAttempts(childID string, limit int) ([]models.BlockedAttempt, error) {
	return s.AttemptRepo.FindByChildID(childID, limit)
}
