package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "test-user-" + user.Email
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	var all []model.User
	for _, u := range m.users {
		all = append(all, *u)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].UserID < all[j].UserID })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockUserRepo) ListPublic(_ context.Context) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if u.IsPublic {
			result = append(result, *u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ShiftRepository ──

type mockShiftRepo struct {
	shifts    map[string]*model.Shift
	upsertErr error
	listErr   error
}

func newMockShiftRepo() *mockShiftRepo {
	return &mockShiftRepo{shifts: make(map[string]*model.Shift)}
}

func (m *mockShiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	if s, ok := m.shifts[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockShiftRepo) ListByRange(_ context.Context, start, end time.Time) ([]model.Shift, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []model.Shift
	for _, s := range m.shifts {
		if !s.StartAt.Before(start) && !s.StartAt.After(end) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result, nil
}

func (m *mockShiftRepo) ListByStaffRange(_ context.Context, staffIDs []string, start, end time.Time) ([]model.Shift, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	wanted := make(map[string]bool, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = true
	}
	var result []model.Shift
	for _, s := range m.shifts {
		if wanted[s.StaffID] && !s.StartAt.Before(start) && !s.StartAt.After(end) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	return result, nil
}

func (m *mockShiftRepo) ListUpcomingForStaff(_ context.Context, staffID string, from time.Time, limit int) ([]model.Shift, error) {
	var result []model.Shift
	for _, s := range m.shifts {
		if s.StaffID == staffID && s.StartAt.After(from) {
			result = append(result, *s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartAt.Before(result[j].StartAt) })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockShiftRepo) UpsertBatch(_ context.Context, shifts []model.Shift) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	for i := range shifts {
		s := shifts[i]
		m.shifts[s.ShiftID] = &s
	}
	return nil
}

// ── Mock ArticleRepository ──

type mockArticleRepo struct {
	articles map[string]*model.Article
	nextID   int
}

func newMockArticleRepo() *mockArticleRepo {
	return &mockArticleRepo{articles: make(map[string]*model.Article)}
}

func (m *mockArticleRepo) Create(_ context.Context, article *model.Article) error {
	if article.ArticleID == "" {
		m.nextID++
		article.ArticleID = fmt.Sprintf("article-%d", m.nextID)
	}
	m.articles[article.ArticleID] = article
	return nil
}

func (m *mockArticleRepo) GetByID(_ context.Context, id string) (*model.Article, error) {
	if a, ok := m.articles[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockArticleRepo) GetBySlug(_ context.Context, slug string) (*model.Article, error) {
	for _, a := range m.articles {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockArticleRepo) Update(_ context.Context, article *model.Article) error {
	article.Version++
	m.articles[article.ArticleID] = article
	return nil
}

func (m *mockArticleRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.articles, id)
	return nil
}

func (m *mockArticleRepo) List(_ context.Context, status string, offset, limit int) ([]model.Article, int64, error) {
	var all []model.Article
	for _, a := range m.articles {
		if status != "" && a.Status != status {
			continue
		}
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ArticleID < all[j].ArticleID })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

// ── Mock ContactRepository ──

type mockContactRepo struct {
	submissions map[string]*model.ContactSubmission
	nextID      int
}

func newMockContactRepo() *mockContactRepo {
	return &mockContactRepo{submissions: make(map[string]*model.ContactSubmission)}
}

func (m *mockContactRepo) Create(_ context.Context, submission *model.ContactSubmission) error {
	if submission.SubmissionID == "" {
		m.nextID++
		submission.SubmissionID = fmt.Sprintf("submission-%d", m.nextID)
	}
	m.submissions[submission.SubmissionID] = submission
	return nil
}

func (m *mockContactRepo) GetByID(_ context.Context, id string) (*model.ContactSubmission, error) {
	if s, ok := m.submissions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContactRepo) MarkHandled(_ context.Context, id string) error {
	s, ok := m.submissions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Handled = true
	return nil
}

func (m *mockContactRepo) List(_ context.Context, handled *bool, offset, limit int) ([]model.ContactSubmission, int64, error) {
	var all []model.ContactSubmission
	for _, s := range m.submissions {
		if handled != nil && s.Handled != *handled {
			continue
		}
		all = append(all, *s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SubmissionID < all[j].SubmissionID })
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications []model.Notification
	createErr     error
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	if notification.NotificationID == "" {
		notification.NotificationID = fmt.Sprintf("notification-%d", len(m.notifications)+1)
	}
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *mockNotificationRepo) List(_ context.Context, userID *string, offset, limit int) ([]model.Notification, int64, error) {
	var all []model.Notification
	for _, n := range m.notifications {
		if userID != nil && (n.UserID == nil || *n.UserID != *userID) {
			continue
		}
		all = append(all, n)
	}
	total := int64(len(all))
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	if offset > len(all) {
		return nil, total, nil
	}
	return all[offset:end], total, nil
}

func (m *mockNotificationRepo) MarkRead(_ context.Context, id string) error {
	for i := range m.notifications {
		if m.notifications[i].NotificationID == id {
			m.notifications[i].IsRead = true
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Mock SiteSettingsRepository ──

type mockSettingsRepo struct {
	settings *model.SiteSettings
	getErr   error
}

func newMockSettingsRepo() *mockSettingsRepo {
	return &mockSettingsRepo{
		settings: &model.SiteSettings{
			SettingsID:        1,
			SEOTitleMax:       60,
			SEODescriptionMax: 160,
			CareShiftTypes:    model.StringArray{"Community Care", "Home Care", "Personal Care", "Respite Care"},
		},
	}
}

func (m *mockSettingsRepo) Get(_ context.Context) (*model.SiteSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.settings, nil
}

func (m *mockSettingsRepo) Update(_ context.Context, settings *model.SiteSettings) error {
	m.settings = settings
	return nil
}

// ── test repository aggregate ──

func newTestRepository() (*repository.Repository, *mockShiftRepo, *mockSettingsRepo) {
	shiftRepo := newMockShiftRepo()
	settingsRepo := newMockSettingsRepo()
	repo := &repository.Repository{
		User:         newMockUserRepo(),
		Shift:        shiftRepo,
		Article:      newMockArticleRepo(),
		Contact:      newMockContactRepo(),
		Notification: newMockNotificationRepo(),
		Settings:     settingsRepo,
	}
	return repo, shiftRepo, settingsRepo
}
