package interchange

import (
	"context"
	"fmt"
	"strings"

	"jobdeck/internal/logging"
	"jobdeck/internal/tracker"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// Importer runs the two-phase CSV import: validate every row up front and
// reject the whole batch on any error, then commit row-by-row with
// individual failures reported rather than aborting the rest.
type Importer struct {
	jobs   tracker.JobRepository
	events tracker.EventRepository
	notes  tracker.NoteRepository
	logger logging.Logger
}

// NewImporter creates a CSV importer
func NewImporter(jobs tracker.JobRepository, events tracker.EventRepository, notes tracker.NoteRepository) *Importer {
	return &Importer{
		jobs:   jobs,
		events: events,
		notes:  notes,
		logger: logging.GetGlobalLogger(),
	}
}

// Import parses, validates and commits a CSV document for the given owner
func (im *Importer) Import(ctx context.Context, ownerID, csvContent string) (*models.ImportResponse, error) {
	rows, err := ParseCSV(csvContent)
	if err != nil {
		return nil, utils.NewBadRequestError(err.Error())
	}

	// Phase 1: all-or-nothing validation
	var validationErrors []string
	for i, row := range rows {
		validationErrors = append(validationErrors, ValidateRow(row, i)...)
	}
	if len(validationErrors) > 0 {
		return nil, utils.NewImportError(validationErrors)
	}

	// Phase 2: best-effort commit
	result := &models.ImportResponse{}
	for i, row := range rows {
		if err := im.importRow(ctx, ownerID, row); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Rad %d: %v", i+2, err))
			continue
		}
		result.Success++
	}

	im.logger.Info("CSV import finished", map[string]interface{}{
		"owner_id": ownerID,
		"success":  result.Success,
		"failed":   result.Failed,
	})

	return result, nil
}

func (im *Importer) importRow(ctx context.Context, ownerID string, row Row) error {
	status := models.StatusWishlist
	if row.Status != "" {
		status = models.JobStatus(strings.ToUpper(row.Status))
	}

	job := &models.Job{
		UserID:      ownerID,
		Title:       strings.TrimSpace(row.Title),
		Company:     strings.TrimSpace(row.Company),
		Location:    strings.TrimSpace(row.Location),
		Remote:      parseRemote(row.Remote),
		Status:      status,
		SalaryNote:  strings.TrimSpace(row.Salary),
		Description: row.Description,
		URL:         strings.TrimSpace(row.URL),
		Tags:        parseTags(row.Tags),
	}

	if trimmed := strings.TrimSpace(row.AppliedAt); trimmed != "" {
		t, err := utils.ParseDate(trimmed)
		if err != nil {
			return err
		}
		job.AppliedAt = &t
	}

	if err := im.jobs.Create(ctx, job); err != nil {
		return err
	}

	event, err := models.NewEvent(ownerID, job.ID, models.EventStatusChanged, models.StatusChangedPayload{To: job.Status})
	if err != nil {
		return err
	}
	if err := im.events.Append(ctx, event); err != nil {
		return err
	}

	if content := strings.TrimSpace(row.Notes); content != "" {
		note := &models.Note{
			UserID:  ownerID,
			JobID:   job.ID,
			Content: content,
		}
		if err := im.notes.Create(ctx, note); err != nil {
			return err
		}
		noteEvent, err := models.NewEvent(ownerID, job.ID, models.EventNoteAdded, models.NoteAddedPayload{NoteID: note.ID})
		if err != nil {
			return err
		}
		if err := im.events.Append(ctx, noteEvent); err != nil {
			return err
		}
	}

	return nil
}

func parseRemote(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "ja":
		return true
	default:
		return false
	}
}

func parseTags(value string) models.TagList {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tags := make(models.TagList, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
