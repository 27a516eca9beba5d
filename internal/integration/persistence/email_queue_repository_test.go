package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/alumni-portal/backoffice/internal/domain/entity"
	domainerror "github.com/alumni-portal/backoffice/internal/domain/error"
)

func newReportJob(recipient string) *entity.EmailJob {
	job := entity.NewEmailJob(entity.TemplateDonationReport, recipient, "Board", "Donation Report", map[string]interface{}{
		"donation_count": 4,
		"total_amount":   "₱3,800.00",
	})
	job.AttachFile("donation-report.html", "text/html; charset=utf-8", []byte("<html></html>"))
	return job
}

func TestEmailQueueRepository_RoundTrip(t *testing.T) {
	repo := NewEmailQueueRepository(newTestDB(t))
	ctx := context.Background()

	job := newReportJob("board@alumni.example")
	if err := repo.Create(ctx, job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.GetByID(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Status != entity.EmailStatusPending {
		t.Errorf("expected pending, got %s", found.Status)
	}
	if found.TemplateData["total_amount"] != "₱3,800.00" {
		t.Errorf("expected template data to survive, got %v", found.TemplateData)
	}
	if len(found.Attachments) != 1 || string(found.Attachments[0].Content) != "<html></html>" {
		t.Errorf("expected attachment to survive, got %+v", found.Attachments)
	}

	_, err = repo.GetByID(ctx, uuid.New())
	if !errors.Is(err, domainerror.ErrEmailJobNotFound) {
		t.Errorf("expected ErrEmailJobNotFound, got %v", err)
	}
}

func TestEmailQueueRepository_GetPendingJobs(t *testing.T) {
	repo := NewEmailQueueRepository(newTestDB(t))
	ctx := context.Background()

	ready := newReportJob("ready@alumni.example")
	ready.ScheduledAt = time.Now().UTC().Add(-time.Hour)
	later := newReportJob("later@alumni.example")
	later.ScheduledAt = time.Now().UTC().Add(time.Hour)
	sent := newReportJob("sent@alumni.example")
	sent.ScheduledAt = time.Now().UTC().Add(-time.Hour)
	sent.MarkSent("re_123")

	for _, job := range []*entity.EmailJob{ready, later, sent} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	jobs, err := repo.GetPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != ready.ID {
		t.Errorf("expected only the ready job, got %d jobs", len(jobs))
	}
}

func TestEmailQueueRepository_UpdateAndPurge(t *testing.T) {
	repo := NewEmailQueueRepository(newTestDB(t))
	ctx := context.Background()

	old := newReportJob("board@alumni.example")
	recent := newReportJob("board@alumni.example")
	for _, job := range []*entity.EmailJob{old, recent} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	old.MarkSent("re_old")
	processed := time.Now().UTC().AddDate(0, 0, -60)
	old.ProcessedAt = &processed
	recent.MarkSent("re_recent")
	for _, job := range []*entity.EmailJob{old, recent} {
		if err := repo.Update(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	deleted, err := repo.DeleteOldSentJobs(ctx, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 purged job, got %d", deleted)
	}

	jobs, err := repo.GetByRecipient(ctx, "board@alumni.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ResendID != "re_recent" {
		t.Errorf("expected only the recent job to remain, got %d", len(jobs))
	}
}
