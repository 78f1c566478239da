package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"KidSafe/models"
	"KidSafe/repositories/mocks"
)

func TestExportFilename(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	name := ExportFilename("Emma", start, end)
	assert.Equal(t, "kidsafe_report_emma_2024-01-01_to_2024-01-07.json", name)
	assert.Contains(t, name, "emma")
	assert.Contains(t, name, "2024-01-01")
	assert.Contains(t, name, "2024-01-07")

	assert.Equal(t, "kidsafe_report_all-children_2024-01-01_to_2024-01-07.json",
		ExportFilename("All Children", start, end))
}

func TestExportSelectsOwnedChild(t *testing.T) {
	mockChildRepo := new(mocks.ChildRepository)
	mockUsageRepo := new(mocks.UsageLogRepository)
	service := NewReportService(mockChildRepo, NewUsageService(mockUsageRepo, mockChildRepo))

	children := []models.Child{
		{ID: "c1", ParentID: "parent-1", Name: "Emma"},
		{ID: "c2", ParentID: "parent-1", Name: "Liam"},
	}
	mockChildRepo.On("FindByParentID", "parent-1").Return(children, nil)
	mockUsageRepo.On("FindInWindow", "c1", mock.Anything, mock.Anything).
		Return([]models.UsageLog{
			{ChildID: "c1", AppName: "Chrome", Duration: 30, StartTime: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
		}, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	doc, filename, err := service.Export("parent-1", "c1", start, end)
	assert.NoError(t, err)
	assert.Equal(t, "Emma", doc.Metadata.Child)
	assert.Len(t, doc.Data, 1)
	assert.Equal(t, "Emma", doc.Data[0].ChildName)
	assert.Equal(t, 30, doc.Data[0].Usage.TimeUsed)
	assert.Contains(t, filename, "emma")
}

func TestExportAllChildren(t *testing.T) {
	mockChildRepo := new(mocks.ChildRepository)
	mockUsageRepo := new(mocks.UsageLogRepository)
	service := NewReportService(mockChildRepo, NewUsageService(mockUsageRepo, mockChildRepo))

	children := []models.Child{
		{ID: "c1", ParentID: "parent-1", Name: "Emma"},
		{ID: "c2", ParentID: "parent-1", Name: "Liam"},
	}
	mockChildRepo.On("FindByParentID", "parent-1").Return(children, nil)
	mockUsageRepo.On("FindInWindow", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.UsageLog{}, nil)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	doc, filename, err := service.Export("parent-1", AllChildren, start, end)
	assert.NoError(t, err)
	assert.Equal(t, "All Children", doc.Metadata.Child)
	assert.Len(t, doc.Data, 2)
	assert.Contains(t, filename, "all-children")

	// The document marshals as indented JSON for download.
	body, err := service.Marshal(doc)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "\n  \"metadata\"")
}

func TestExportUnknownChild(t *testing.T) {
	mockChildRepo := new(mocks.ChildRepository)
	mockUsageRepo := new(mocks.UsageLogRepository)
	service := NewReportService(mockChildRepo, NewUsageService(mockUsageRepo, mockChildRepo))

	mockChildRepo.On("FindByParentID", "parent-1").
		Return([]models.Child{{ID: "c1", ParentID: "parent-1", Name: "Emma"}}, nil)

	_, _, err := service.Export("parent-1", "someone-elses-child",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrChildNotFound)
}
