package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"KidSafe/models"
	"KidSafe/repositories"
)

// Reporting windows.
const (
	WindowToday = "today"
	WindowWeek  = "week"
	WindowMonth = "month"
)

const topAppLimit = 4

// AppUsage is one entry of the top-apps list. Percentage is the app's share
// of the window total, 0 when the total is 0.
type AppUsage struct {
	Name       string  `json:"name"`
	Minutes    int     `json:"minutes"`
	Percentage float64 `json:"percentage"`
}

// UsageBucket is one chart bucket: an hour of the day for the today window,
// a day of the week otherwise.
type UsageBucket struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// UsageSummary is the reduced view every dashboard derives from. Synthetic
// marks the placeholder dataset returned when no rows exist for the window;
// it is a product behavior, not an error.
type UsageSummary struct {
	ChildID   string        `json:"child_id"`
	Window    string        `json:"window"`
	TimeUsed  int           `json:"time_used"` // minutes
	TopApps   []AppUsage    `json:"top_apps"`
	Buckets   []UsageBucket `json:"buckets"`
	Synthetic bool          `json:"synthetic"`
}

// ChildOverview is one row of the parent dashboard.
type ChildOverview struct {
	Child         models.Child `json:"child"`
	TimeRemaining int          `json:"time_remaining"`
	RemainingHMM  string       `json:"remaining_display"`
	PercentUsed   float64      `json:"percent_used"`
	InBedtime     bool         `json:"in_bedtime"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	ChildName string          `json:"child_name"`
	Log       models.UsageLog `json:"log"`
}

type UsageService struct {
	UsageRepo repositories.UsageLogRepository
	ChildRepo repositories.ChildRepository
}

func NewUsageService(usageRepo repositories.UsageLogRepository, childRepo repositories.ChildRepository) *UsageService {
	return &UsageService{UsageRepo: usageRepo, ChildRepo: childRepo}
}

// Summary reduces the child's usage rows for the window ending at now. When
// the window holds no rows the fixed synthetic dataset is returned instead,
// so fresh dashboards stay populated.
func (s *UsageService) Summary(childID, window string, now time.Time) (UsageSummary, error) {
	start, end := windowBounds(window, now)
	logs, err := s.UsageRepo.FindInWindow(childID, start, end)
	if err != nil {
		return UsageSummary{}, err
	}
	if len(logs) == 0 {
		return placeholderSummary(childID, window), nil
	}
	return reduce(childID, window, logs, window == WindowToday), nil
}

// SummaryRange reduces rows for an arbitrary [start, end) range, used by
// report export. Day-of-week buckets; same synthetic fallback as Summary.
func (s *UsageService) SummaryRange(childID string, start, end time.Time) (UsageSummary, error) {
	logs, err := s.UsageRepo.FindInWindow(childID, start, end)
	if err != nil {
		return UsageSummary{}, err
	}
	if len(logs) == 0 {
		return placeholderSummary(childID, WindowWeek), nil
	}
	return reduce(childID, WindowWeek, logs, false), nil
}

// Overview builds the dashboard row for every child of the parent.
func (s *UsageService) Overview(parentID string, now time.Time) ([]ChildOverview, error) {
	children, err := s.ChildRepo.FindByParentID(parentID)
	if err != nil {
		return nil, err
	}

	overviews := make([]ChildOverview, 0, len(children))
	for _, child := range children {
		remaining := child.TimeRemaining()
		overviews = append(overviews, ChildOverview{
			Child:         child,
			TimeRemaining: remaining,
			RemainingHMM:  FormatHMM(remaining),
			PercentUsed:   child.PercentUsed(),
			InBedtime:     InBedtime(now, child.BedtimeStart, child.BedtimeEnd, child.BedtimeEnabled),
		})
	}
	return overviews, nil
}

// RecentActivity returns the latest usage logs across all of the parent's
// children, annotated with the child's name.
func (s *UsageService) RecentActivity(parentID string, limit int) ([]ActivityEntry, error) {
	children, err := s.ChildRepo.FindByParentID(parentID)
	if err != nil {
		return nil, err
	}
	if len(children) == 0 {
		return []ActivityEntry{}, nil
	}

	names := make(map[string]string, len(children))
	ids := make([]string, 0, len(children))
	for _, child := range children {
		names[child.ID] = child.Name
		ids = append(ids, child.ID)
	}

	logs, err := s.UsageRepo.FindRecentByChildIDs(ids, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, 0, len(logs))
	for _, log := range logs {
		entries = append(entries, ActivityEntry{ChildName: names[log.ChildID], Log: log})
	}
	return entries, nil
}

// PercentOfLimit clamps used/limit to [0,100] for display. A limit of zero
// or less means no limit is shown, so the result is 0 rather than a division
// by zero.
func PercentOfLimit(used, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	pct := float64(used) / float64(limit) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining never goes negative.
func Remaining(limit, used int) int {
	if remaining := limit - used; remaining > 0 {
		return remaining
	}
	return 0
}

// FormatHMM renders minutes as H:MM.
func FormatHMM(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// InBedtime reports whether now falls inside [start, end), where the window
// wraps past midnight when start > end. The end is exclusive: at exactly the
// wake time the window is over.
func InBedtime(now time.Time, start, end string, enabled bool) bool {
	if !enabled {
		return false
	}
	startMin, okStart := parseClock(start)
	endMin, okEnd := parseClock(end)
	if !okStart || !okEnd || startMin == endMin {
		return false
	}

	cur := now.Hour()*60 + now.Minute()
	if startMin < endMin {
		return cur >= startMin && cur < endMin
	}
	// Window spans midnight.
	return cur >= startMin || cur < endMin
}

// ValidClock reports whether s is a well-formed "HH:MM" time of day.
func ValidClock(s string) bool {
	_, ok := parseClock(s)
	return ok
}

func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

func windowBounds(window string, now time.Time) (time.Time, time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	switch window {
	case WindowWeek:
		return dayEnd.AddDate(0, 0, -7), dayEnd
	case WindowMonth:
		return dayEnd.AddDate(0, 0, -30), dayEnd
	default:
		return dayStart, dayEnd
	}
}

func reduce(childID, window string, logs []models.UsageLog, hourly bool) UsageSummary {
	total := 0
	appTotals := make(map[string]int)
	bucketTotals := make(map[string]int)

	for _, log := range logs {
		total += log.Duration
		appTotals[log.AppName] += log.Duration
		if hourly {
			bucketTotals[hourLabel(log.StartTime.Hour())] += log.Duration
		} else {
			bucketTotals[log.StartTime.Weekday().String()[:3]] += log.Duration
		}
	}

	apps := make([]AppUsage, 0, len(appTotals))
	for name, minutes := range appTotals {
		apps = append(apps, AppUsage{Name: name, Minutes: minutes})
	}
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].Minutes != apps[j].Minutes {
			return apps[i].Minutes > apps[j].Minutes
		}
		return apps[i].Name < apps[j].Name
	})
	if len(apps) > topAppLimit {
		apps = apps[:topAppLimit]
	}
	for i := range apps {
		if total > 0 {
			apps[i].Percentage = float64(apps[i].Minutes) / float64(total) * 100
		}
	}

	var buckets []UsageBucket
	if hourly {
		for h := 0; h < 24; h++ {
			label := hourLabel(h)
			if minutes, ok := bucketTotals[label]; ok {
				buckets = append(buckets, UsageBucket{Label: label, Minutes: minutes})
			}
		}
	} else {
		for _, day := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
			if minutes, ok := bucketTotals[day]; ok {
				buckets = append(buckets, UsageBucket{Label: day, Minutes: minutes})
			}
		}
	}

	return UsageSummary{
		ChildID:  childID,
		Window:   window,
		TimeUsed: total,
		TopApps:  apps,
		Buckets:  buckets,
	}
}

func hourLabel(h int) string {
	switch {
	case h == 0:
		return "12AM"
	case h < 12:
		return fmt.Sprintf("%dAM", h)
	case h == 12:
		return "12PM"
	default:
		return fmt.Sprintf("%dPM", h-12)
	}
}
