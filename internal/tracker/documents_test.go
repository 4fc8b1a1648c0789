package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"jobdeck/pkg/models"
)

func uploadInput(size int64, contentType string) UploadInput {
	return UploadInput{
		JobID:       "job-1",
		Label:       "CV v2",
		Type:        models.DocumentCV,
		Filename:    "cv.pdf",
		ContentType: contentType,
		Size:        size,
		Content:     strings.NewReader("%PDF-1.7"),
	}
}

func TestUploadRejectsOversizeBeforeBlobWrite(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewDocumentService(newFakeDocumentRepo(), newFakeEventRepo(), blobs)

	_, err := svc.Upload(context.Background(), "owner-1", uploadInput(models.MaxUploadSize+1, "application/pdf"))
	if err == nil {
		t.Fatal("expected size error")
	}
	if !strings.Contains(err.Error(), "Filen er for stor. Maks 10MB.") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if blobs.puts != 0 {
		t.Error("oversize upload must not reach the blob store")
	}
}

func TestUploadRejectsUnknownMIMEBeforeBlobWrite(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewDocumentService(newFakeDocumentRepo(), newFakeEventRepo(), blobs)

	_, err := svc.Upload(context.Background(), "owner-1", uploadInput(1024, "application/x-sh"))
	if err == nil {
		t.Fatal("expected type error")
	}
	if !strings.Contains(err.Error(), "Ugyldig filtype") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if blobs.puts != 0 {
		t.Error("rejected upload must not reach the blob store")
	}
}

func TestUploadStoresBlobAndAppendsEvent(t *testing.T) {
	docs := newFakeDocumentRepo()
	events := newFakeEventRepo()
	blobs := &fakeBlobStore{}
	svc := NewDocumentService(docs, events, blobs)

	doc, err := svc.Upload(context.Background(), "owner-1", uploadInput(1024, "application/pdf"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if blobs.puts != 1 {
		t.Errorf("expected 1 blob write, got %d", blobs.puts)
	}
	if !strings.HasPrefix(doc.BlobURL, "https://blobs.test/documents/owner-1/") {
		t.Errorf("unexpected blob url %q", doc.BlobURL)
	}
	if !strings.HasSuffix(doc.BlobURL, ".pdf") {
		t.Errorf("blob key should keep the original extension, got %q", doc.BlobURL)
	}

	attached := events.byType(models.EventFileAttached)
	if len(attached) != 1 {
		t.Fatalf("expected 1 FILE_ATTACHED event, got %d", len(attached))
	}
	payload, _ := attached[0].DecodePayload()
	fa := payload.(models.FileAttachedPayload)
	if fa.DocumentID != doc.ID || fa.Label != "CV v2" {
		t.Errorf("unexpected payload %+v", fa)
	}
}

func TestUploadWithoutJobNoEvent(t *testing.T) {
	events := newFakeEventRepo()
	svc := NewDocumentService(newFakeDocumentRepo(), events, &fakeBlobStore{})

	in := uploadInput(1024, "application/pdf")
	in.JobID = ""
	if _, err := svc.Upload(context.Background(), "owner-1", in); err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if got := len(events.byType(models.EventFileAttached)); got != 0 {
		t.Errorf("unscoped upload should not append events, got %d", got)
	}
}

func TestUploadBlobFailureAbortsRecord(t *testing.T) {
	docs := newFakeDocumentRepo()
	blobs := &fakeBlobStore{putErr: errors.New("spaces unavailable")}
	svc := NewDocumentService(docs, newFakeEventRepo(), blobs)

	_, err := svc.Upload(context.Background(), "owner-1", uploadInput(1024, "application/pdf"))
	if err == nil {
		t.Fatal("expected storage error")
	}
	all, _ := docs.ListAll(context.Background(), "owner-1")
	if len(all) != 0 {
		t.Errorf("failed blob write must not leave a record, got %d", len(all))
	}
}

func TestDeleteSwallowsBlobFailure(t *testing.T) {
	docs := newFakeDocumentRepo()
	blobs := &fakeBlobStore{}
	svc := NewDocumentService(docs, newFakeEventRepo(), blobs)
	ctx := context.Background()

	doc, err := svc.Upload(ctx, "owner-1", uploadInput(1024, "application/pdf"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	blobs.deleteErr = errors.New("spaces unavailable")
	if err := svc.Delete(ctx, "owner-1", doc.ID); err != nil {
		t.Fatalf("delete should succeed despite blob failure: %v", err)
	}
	if blobs.deletes != 1 {
		t.Errorf("expected 1 blob delete attempt, got %d", blobs.deletes)
	}
	if _, err := docs.GetByID(ctx, "owner-1", doc.ID); err == nil {
		t.Error("expected record to be removed")
	}
}

func TestUploadDefaultsTypeAndLabel(t *testing.T) {
	svc := NewDocumentService(newFakeDocumentRepo(), newFakeEventRepo(), &fakeBlobStore{})

	in := uploadInput(1024, "application/pdf")
	in.Type = ""
	in.Label = ""
	doc, err := svc.Upload(context.Background(), "owner-1", in)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if doc.Type != models.DocumentOther {
		t.Errorf("expected OTHER default, got %s", doc.Type)
	}
	if doc.Label != "cv.pdf" {
		t.Errorf("expected filename as label fallback, got %q", doc.Label)
	}
}
