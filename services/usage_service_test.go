package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"KidSafe/models"
	"KidSafe/repositories/mocks"
)

func TestInBedtimeWrapsMidnight(t *testing.T) {
	day := func(hhmm string) time.Time {
		parsed, err := time.Parse("15:04", hhmm)
		assert.NoError(t, err)
		return time.Date(2024, 3, 5, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	}

	// 21:00-07:00 wraps midnight; the end is exclusive.
	assert.True(t, InBedtime(day("23:00"), "21:00", "07:00", true))
	assert.True(t, InBedtime(day("02:30"), "21:00", "07:00", true))
	assert.True(t, InBedtime(day("21:00"), "21:00", "07:00", true))
	assert.False(t, InBedtime(day("12:00"), "21:00", "07:00", true))
	assert.False(t, InBedtime(day("07:00"), "21:00", "07:00", true))

	// Non-wrapping window.
	assert.True(t, InBedtime(day("14:00"), "13:00", "15:00", true))
	assert.False(t, InBedtime(day("15:00"), "13:00", "15:00", true))

	// Disabled short-circuits regardless of the clock.
	assert.False(t, InBedtime(day("23:00"), "21:00", "07:00", false))
}

func TestRemainingNeverNegative(t *testing.T) {
	assert.Equal(t, 60, Remaining(180, 120))
	assert.Equal(t, 0, Remaining(180, 180))
	assert.Equal(t, 0, Remaining(180, 500))
}

func TestPercentOfLimitClamps(t *testing.T) {
	assert.Equal(t, float64(0), PercentOfLimit(120, 0))
	assert.Equal(t, float64(0), PercentOfLimit(120, -10))
	assert.Equal(t, float64(50), PercentOfLimit(90, 180))
	assert.Equal(t, float64(100), PercentOfLimit(500, 180))
}

func TestFormatHMM(t *testing.T) {
	assert.Equal(t, "2:05", FormatHMM(125))
	assert.Equal(t, "0:00", FormatHMM(0))
	assert.Equal(t, "1:00", FormatHMM(60))
}

func TestSummaryPercentagesSumToHundred(t *testing.T) {
	mockUsageRepo := new(mocks.UsageLogRepository)
	mockChildRepo := new(mocks.ChildRepository)
	service := NewUsageService(mockUsageRepo, mockChildRepo)

	now := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)
	logs := []models.UsageLog{
		{ChildID: "child-1", AppName: "YouTube", Duration: 90, StartTime: now.Add(-5 * time.Hour)},
		{ChildID: "child-1", AppName: "Chrome", Duration: 45, StartTime: now.Add(-3 * time.Hour)},
		{ChildID: "child-1", AppName: "Minecraft", Duration: 45, StartTime: now.Add(-1 * time.Hour)},
	}
	mockUsageRepo.On("FindInWindow", "child-1", mock.Anything, mock.Anything).Return(logs, nil)

	summary, err := service.Summary("child-1", WindowToday, now)
	assert.NoError(t, err)
	assert.False(t, summary.Synthetic)
	assert.Equal(t, 180, summary.TimeUsed)

	// Sorted by minutes descending, shares summing to 100.
	assert.Equal(t, "YouTube", summary.TopApps[0].Name)
	total := 0.0
	for _, app := range summary.TopApps {
		total += app.Percentage
	}
	assert.InDelta(t, 100, total, 0.01)

	// Bucket sums match the window total.
	bucketTotal := 0
	for _, bucket := range summary.Buckets {
		bucketTotal += bucket.Minutes
	}
	assert.Equal(t, summary.TimeUsed, bucketTotal)
}

func TestSummaryKeepsTopFourApps(t *testing.T) {
	mockUsageRepo := new(mocks.UsageLogRepository)
	service := NewUsageService(mockUsageRepo, new(mocks.ChildRepository))

	now := time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)
	logs := []models.UsageLog{
		{AppName: "A", Duration: 50, StartTime: now},
		{AppName: "B", Duration: 40, StartTime: now},
		{AppName: "C", Duration: 30, StartTime: now},
		{AppName: "D", Duration: 20, StartTime: now},
		{AppName: "E", Duration: 10, StartTime: now},
	}
	mockUsageRepo.On("FindInWindow", "child-1", mock.Anything, mock.Anything).Return(logs, nil)

	summary, err := service.Summary("child-1", WindowToday, now)
	assert.NoError(t, err)
	assert.Len(t, summary.TopApps, 4)
	assert.Equal(t, "A", summary.TopApps[0].Name)
}

func TestSummaryFallsBackToSyntheticDataset(t *testing.T) {
	mockUsageRepo := new(mocks.UsageLogRepository)
	service := NewUsageService(mockUsageRepo, new(mocks.ChildRepository))

	mockUsageRepo.On("FindInWindow", "child-1", mock.Anything, mock.Anything).
		Return([]models.UsageLog{}, nil)

	for _, window := range []string{WindowToday, WindowWeek, WindowMonth} {
		summary, err := service.Summary("child-1", window, time.Now())
		assert.NoError(t, err)
		assert.True(t, summary.Synthetic)
		assert.Greater(t, summary.TimeUsed, 0)

		// The fixed dataset is internally consistent: bucket sums equal the
		// total and app shares sum to 100.
		bucketTotal := 0
		for _, bucket := range summary.Buckets {
			bucketTotal += bucket.Minutes
		}
		assert.Equal(t, summary.TimeUsed, bucketTotal, window)

		// Fallback buckets chart like live data: weekday labels for every
		// window except today.
		if window != WindowToday {
			weekdays := map[string]bool{
				"Mon": true, "Tue": true, "Wed": true, "Thu": true,
				"Fri": true, "Sat": true, "Sun": true,
			}
			for _, bucket := range summary.Buckets {
				assert.True(t, weekdays[bucket.Label], window+" "+bucket.Label)
			}
		}

		pctTotal := 0.0
		for _, app := range summary.TopApps {
			pctTotal += app.Percentage
		}
		assert.InDelta(t, 100, pctTotal, 0.5, window)
	}
}

func TestOverviewDerivesDisplayFields(t *testing.T) {
	mockUsageRepo := new(mocks.UsageLogRepository)
	mockChildRepo := new(mocks.ChildRepository)
	service := NewUsageService(mockUsageRepo, mockChildRepo)

	children := []models.Child{
		{ID: "c1", Name: "Emma", DailyLimit: 180, TimeUsed: 120, BedtimeStart: "21:00", BedtimeEnd: "07:00", BedtimeEnabled: true},
		{ID: "c2", Name: "Liam", DailyLimit: 120, TimeUsed: 200},
	}
	mockChildRepo.On("FindByParentID", "parent-1").Return(children, nil)

	now := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)
	overview, err := service.Overview("parent-1", now)
	assert.NoError(t, err)
	assert.Len(t, overview, 2)

	assert.Equal(t, 60, overview[0].TimeRemaining)
	assert.Equal(t, "1:00", overview[0].RemainingHMM)
	assert.True(t, overview[0].InBedtime)

	// Over the limit: remaining floors at zero, percent caps at 100.
	assert.Equal(t, 0, overview[1].TimeRemaining)
	assert.Equal(t, float64(100), overview[1].PercentUsed)
	assert.False(t, overview[1].InBedtime)
}
