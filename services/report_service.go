package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"KidSafe/models"
	"KidSafe/repositories"
)

// AllChildren selects every child of the parent in a report export.
const AllChildren = "all"

var ErrChildNotFound = errors.New("child not found")

// ReportMetadata describes one export.
type ReportMetadata struct {
	Generated time.Time       `json:"generated"`
	DateRange ReportDateRange `json:"dateRange"`
	Child     string          `json:"child"`
}

type ReportDateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ChildReport is the per-child slice of the export.
type ChildReport struct {
	ChildName string       `json:"child_name"`
	Usage     UsageSummary `json:"usage"`
}

// ReportDocument is the downloadable JSON artifact.
type ReportDocument struct {
	Metadata ReportMetadata `json:"metadata"`
	Data     []ChildReport  `json:"data"`
}

type ReportService struct {
	ChildRepo repositories.ChildRepository
	Usage     *UsageService
}

func NewReportService(childRepo repositories.ChildRepository, usage *UsageService) *ReportService {
	return &ReportService{ChildRepo: childRepo, Usage: usage}
}

// Export aggregates usage for the selected child (or all children) over
// [start, end) and returns the document with its deterministic filename.
func (s *ReportService) Export(parentID, childID string, start, end time.Time) (ReportDocument, string, error) {
	children, err := s.ChildRepo.FindByParentID(parentID)
	if err != nil {
		return ReportDocument{}, "", err
	}

	var selected []models.Child
	childLabel := "All Children"
	if childID == AllChildren || childID == "" {
		selected = children
	} else {
		for _, child := range children {
			if child.ID == childID {
				selected = []models.Child{child}
				childLabel = child.Name
				break
			}
		}
		if len(selected) == 0 {
			return ReportDocument{}, "", ErrChildNotFound
		}
	}

	reports := make([]ChildReport, 0, len(selected))
	for _, child := range selected {
		summary, err := s.Usage.SummaryRange(child.ID, start, end)
		if err != nil {
			return ReportDocument{}, "", err
		}
		reports = append(reports, ChildReport{ChildName: child.Name, Usage: summary})
	}

	doc := ReportDocument{
		Metadata: ReportMetadata{
			Generated: time.Now(),
			DateRange: ReportDateRange{Start: start, End: end},
			Child:     childLabel,
		},
		Data: reports,
	}
	return doc, ExportFilename(childLabel, start, end), nil
}

// Marshal renders the document as indented JSON for download.
func (s *ReportService) Marshal(doc ReportDocument) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ExportFilename builds the deterministic download name, e.g.
// kidsafe_report_emma_2024-01-01_to_2024-01-07.json.
func ExportFilename(childLabel string, start, end time.Time) string {
	name := strings.ToLower(strings.TrimSpace(childLabel))
	name = strings.ReplaceAll(name, " ", "-")
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("kidsafe_report_%s_%s_to_%s.json",
		name, start.Format("2006-01-02"), end.Format("2006-01-02"))
}
