package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
)

// ErrSubmissionNotFound contact submission lookup failure.
var ErrSubmissionNotFound = errors.New("contact submission not found")

// ContactService contact-form intake and the admin inbox over it.
type ContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactSubmissionResponse, error)
	List(ctx context.Context, req *dto.ContactListRequest) ([]dto.ContactSubmissionResponse, int64, error)
	MarkHandled(ctx context.Context, id string) error
}

type contactService struct {
	repo     *repository.Repository
	notifier Notifier
	logger   *zap.Logger
}

// NewContactService creates a ContactService.
func NewContactService(repo *repository.Repository, notifier Notifier, logger *zap.Logger) ContactService {
	return &contactService{repo: repo, notifier: notifier, logger: logger}
}

func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) (*dto.ContactSubmissionResponse, error) {
	submission := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.repo.Contact.Create(ctx, submission); err != nil {
		s.logger.Error("failed to store contact submission", zap.Error(err))
		return nil, err
	}

	// Alerting is best effort; the submission is already stored.
	notification := &model.Notification{
		Type:    "contact",
		Tag:     "contact:" + submission.SubmissionID,
		Title:   fmt.Sprintf("New contact enquiry from %s", submission.Name),
		Content: fmt.Sprintf("Subject: %s\nEmail: %s\n\n%s", submission.Subject, submission.Email, submission.Message),
	}
	if err := s.notifier.Notify(ctx, notification); err != nil {
		s.logger.Warn("failed to notify contact submission", zap.Error(err))
	}

	resp := toContactResponse(submission)
	return &resp, nil
}

func (s *contactService) List(ctx context.Context, req *dto.ContactListRequest) ([]dto.ContactSubmissionResponse, int64, error) {
	offset := (req.GetPage() - 1) * req.GetPageSize()
	submissions, total, err := s.repo.Contact.List(ctx, req.Handled, offset, req.GetPageSize())
	if err != nil {
		s.logger.Error("failed to list contact submissions", zap.Error(err))
		return nil, 0, err
	}

	out := make([]dto.ContactSubmissionResponse, 0, len(submissions))
	for i := range submissions {
		out = append(out, toContactResponse(&submissions[i]))
	}
	return out, total, nil
}

func (s *contactService) MarkHandled(ctx context.Context, id string) error {
	if _, err := s.repo.Contact.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}
	return s.repo.Contact.MarkHandled(ctx, id)
}

func toContactResponse(submission *model.ContactSubmission) dto.ContactSubmissionResponse {
	return dto.ContactSubmissionResponse{
		ID:        submission.SubmissionID,
		Name:      submission.Name,
		Email:     submission.Email,
		Phone:     submission.Phone,
		Subject:   submission.Subject,
		Message:   submission.Message,
		Handled:   submission.Handled,
		CreatedAt: submission.CreatedAt.UTC().Format(time.RFC3339),
	}
}
