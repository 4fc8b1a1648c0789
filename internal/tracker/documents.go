package tracker

import (
	"context"
	"fmt"
	"io"
	"path"

	"jobdeck/internal/blob"
	"jobdeck/internal/logging"
	"jobdeck/pkg/models"
	"jobdeck/pkg/utils"
)

// UploadInput carries an incoming document upload
type UploadInput struct {
	JobID       string
	Label       string
	Type        models.DocumentType
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// DocumentService manages document metadata and the blob store behind it
type DocumentService struct {
	documents DocumentRepository
	events    EventRepository
	blobs     blob.Store
	logger    logging.Logger
}

// NewDocumentService creates a document service
func NewDocumentService(documents DocumentRepository, events EventRepository, blobs blob.Store) *DocumentService {
	return &DocumentService{
		documents: documents,
		events:    events,
		blobs:     blobs,
		logger:    logging.GetGlobalLogger(),
	}
}

// Upload validates size and MIME type before any blob write, stores the
// file, and persists the metadata record. A failed blob write aborts the
// whole operation.
func (s *DocumentService) Upload(ctx context.Context, ownerID string, in UploadInput) (*models.Document, error) {
	if in.Content == nil {
		return nil, utils.NewValidationError("Ingen fil valgt")
	}
	if in.Size > models.MaxUploadSize {
		return nil, utils.NewValidationError("Filen er for stor. Maks 10MB.")
	}
	if !models.IsAllowedUploadType(in.ContentType) {
		return nil, utils.NewValidationError("Ugyldig filtype. Kun PDF, DOCX, PNG, JPEG og WEBP er tillatt.")
	}

	docType := in.Type
	switch docType {
	case models.DocumentCV, models.DocumentCoverLetter, models.DocumentOther:
	case "":
		docType = models.DocumentOther
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown document type %q", docType))
	}

	key := fmt.Sprintf("documents/%s/%s%s", ownerID, utils.GenerateID(), path.Ext(in.Filename))
	blobURL, err := s.blobs.Put(ctx, key, in.ContentType, in.Content, in.Size)
	if err != nil {
		return nil, utils.NewStorageError(err.Error())
	}

	doc := &models.Document{
		UserID:   ownerID,
		JobID:    in.JobID,
		Label:    utils.GetStringOrDefault(in.Label, in.Filename),
		Type:     docType,
		BlobURL:  blobURL,
		Original: in.Filename,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}

	if doc.JobID != "" {
		event, err := models.NewEvent(ownerID, doc.JobID, models.EventFileAttached, models.FileAttachedPayload{
			DocumentID: doc.ID,
			Label:      doc.Label,
		})
		if err != nil {
			return nil, err
		}
		if err := s.events.Append(ctx, event); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// Delete removes the metadata record. The blob delete is best-effort: a
// failure is logged and swallowed, leaving an orphaned blob rather than a
// dangling database record.
func (s *DocumentService) Delete(ctx context.Context, ownerID, documentID string) error {
	doc, err := s.documents.GetByID(ctx, ownerID, documentID)
	if err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, doc.BlobURL); err != nil {
		s.logger.Warn("Failed to delete blob, continuing with record removal", map[string]interface{}{
			"document_id": doc.ID,
			"blob_url":    doc.BlobURL,
			"error":       err.Error(),
		})
	}

	return s.documents.Delete(ctx, ownerID, documentID)
}

// ListByJob returns a job's documents, newest first
func (s *DocumentService) ListByJob(ctx context.Context, ownerID, jobID string) ([]models.Document, error) {
	return s.documents.ListByJob(ctx, ownerID, jobID)
}

// ListAll returns every document the owner has uploaded
func (s *DocumentService) ListAll(ctx context.Context, ownerID string) ([]models.Document, error) {
	return s.documents.ListAll(ctx, ownerID)
}
