package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
)

func setupTestContactService(t *testing.T) (ContactService, *mockNotifier, *mockNotificationRepo) {
	t.Helper()
	repo, _, _ := newTestRepository()
	notifier := &mockNotifier{}
	notificationRepo := repo.Notification.(*mockNotificationRepo)
	return NewContactService(repo, notifier, zap.NewNop()), notifier, notificationRepo
}

func TestContactSubmit_StoresAndNotifies(t *testing.T) {
	svc, notifier, _ := setupTestContactService(t)

	resp, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Jordan Lee",
		Email:   "jordan@example.org",
		Subject: "Respite enquiry",
		Message: "Could someone call me about respite care options?",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if resp.ID == "" {
		t.Error("submission must get an ID")
	}
	if resp.Handled {
		t.Error("new submissions start unhandled")
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one admin notification, got %d", len(notifier.sent))
	}
	n := notifier.sent[0]
	if n.Type != "contact" || n.Tag != "contact:"+resp.ID {
		t.Errorf("unexpected notification %+v", n)
	}
	if !strings.Contains(n.Content, "Respite enquiry") {
		t.Errorf("notification must carry the subject, got %q", n.Content)
	}
}

func TestContactSubmit_NotifierFailureIsSwallowed(t *testing.T) {
	repo, _, _ := newTestRepository()
	svc := NewContactService(repo, failingNotifier{}, zap.NewNop())

	resp, err := svc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Jordan Lee",
		Email:   "jordan@example.org",
		Message: "A long enough message body.",
	})
	if err != nil {
		t.Fatalf("a notifier failure must not fail the submission: %v", err)
	}
	if resp.ID == "" {
		t.Error("the submission must still be stored")
	}
}

type failingNotifier struct{}

func (failingNotifier) Notify(context.Context, *model.Notification) error {
	return errors.New("notifier down")
}

func TestContactListAndMarkHandled(t *testing.T) {
	svc, _, _ := setupTestContactService(t)

	first, _ := svc.Submit(context.Background(), &dto.ContactRequest{
		Name: "Jordan", Email: "j@example.org", Message: "First enquiry message.",
	})
	_, _ = svc.Submit(context.Background(), &dto.ContactRequest{
		Name: "Sam", Email: "s@example.org", Message: "Second enquiry message.",
	})

	if err := svc.MarkHandled(context.Background(), first.ID); err != nil {
		t.Fatalf("MarkHandled failed: %v", err)
	}

	handled := true
	got, total, err := svc.List(context.Background(), &dto.ContactListRequest{Handled: &handled})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(got) != 1 || got[0].ID != first.ID {
		t.Errorf("expected only the handled submission, got total=%d list=%v", total, got)
	}

	if err := svc.MarkHandled(context.Background(), "missing"); !errors.Is(err, ErrSubmissionNotFound) {
		t.Errorf("expected ErrSubmissionNotFound, got %v", err)
	}
}
