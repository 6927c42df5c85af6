package service

import (
	"context"
	"errors"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	"github.com/TrialEnjoyer/yallburru-backend/internal/repository"
)

// ── Article module errors ──

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("an article with this slug already exists")
	ErrNotPublished    = errors.New("article is not published")
)

// ArticleService article CMS operations behind the admin editor and the
// public content pages.
type ArticleService interface {
	Create(ctx context.Context, req *dto.CreateArticleRequest, authorID string) (*dto.ArticleResponse, error)
	Get(ctx context.Context, id string) (*dto.ArticleResponse, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error)
	List(ctx context.Context, req *dto.ArticleListRequest) ([]dto.ArticleBrief, int64, error)
	ListPublished(ctx context.Context, req *dto.PaginationRequest) ([]dto.ArticleBrief, int64, error)
	Update(ctx context.Context, id string, req *dto.UpdateArticleRequest, callerID string) (*dto.ArticleResponse, error)
	Publish(ctx context.Context, id string, callerID string) (*dto.ArticleResponse, error)
	Unpublish(ctx context.Context, id string, callerID string) (*dto.ArticleResponse, error)
	Delete(ctx context.Context, id string, callerID string) error
}

type articleService struct {
	repo      *repository.Repository
	sanitizer *bluemonday.Policy
	clock     func() time.Time
	logger    *zap.Logger
}

// NewArticleService creates an ArticleService. Rich-text content is
// sanitised with the bluemonday UGC policy before storage.
func NewArticleService(repo *repository.Repository, logger *zap.Logger) ArticleService {
	return &articleService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		clock:     time.Now,
		logger:    logger,
	}
}

func (s *articleService) Create(ctx context.Context, req *dto.CreateArticleRequest, authorID string) (*dto.ArticleResponse, error) {
	if _, err := s.repo.Article.GetBySlug(ctx, req.Slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("failed to check article slug", zap.Error(err))
		return nil, err
	}

	article := &model.Article{
		Slug:           req.Slug,
		Title:          req.Title,
		Content:        s.sanitizer.Sanitize(req.Content),
		Excerpt:        req.Excerpt,
		Status:         "draft",
		AuthorID:       authorID,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
	}
	article.CreatedBy = &authorID

	if err := s.repo.Article.Create(ctx, article); err != nil {
		s.logger.Error("failed to create article", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, article), nil
}

func (s *articleService) Get(ctx context.Context, id string) (*dto.ArticleResponse, error) {
	article, err := s.repo.Article.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		s.logger.Error("failed to load article", zap.Error(err))
		return nil, err
	}
	return s.toResponse(ctx, article), nil
}

func (s *articleService) GetPublishedBySlug(ctx context.Context, slug string) (*dto.ArticleResponse, error) {
	article, err := s.repo.Article.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		s.logger.Error("failed to load article by slug", zap.Error(err))
		return nil, err
	}
	if article.Status != "published" {
		return nil, ErrNotPublished
	}
	resp := s.toResponse(ctx, article)
	resp.SEOCheck = nil // public consumers don't need editor hints
	return resp, nil
}

func (s *articleService) List(ctx context.Context, req *dto.ArticleListRequest) ([]dto.ArticleBrief, int64, error) {
	offset := (req.GetPage() - 1) * req.GetPageSize()
	articles, total, err := s.repo.Article.List(ctx, req.Status, offset, req.GetPageSize())
	if err != nil {
		s.logger.Error("failed to list articles", zap.Error(err))
		return nil, 0, err
	}
	return toBriefs(articles), total, nil
}

func (s *articleService) ListPublished(ctx context.Context, req *dto.PaginationRequest) ([]dto.ArticleBrief, int64, error) {
	offset := (req.GetPage() - 1) * req.GetPageSize()
	articles, total, err := s.repo.Article.List(ctx, "published", offset, req.GetPageSize())
	if err != nil {
		s.logger.Error("failed to list published articles", zap.Error(err))
		return nil, 0, err
	}
	return toBriefs(articles), total, nil
}

func (s *articleService) Update(ctx context.Context, id string, req *dto.UpdateArticleRequest, callerID string) (*dto.ArticleResponse, error) {
	article, err := s.repo.Article.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		s.logger.Error("failed to load article", zap.Error(err))
		return nil, err
	}

	if req.Slug != nil && *req.Slug != article.Slug {
		if _, err := s.repo.Article.GetBySlug(ctx, *req.Slug); err == nil {
			return nil, ErrSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		article.Slug = *req.Slug
	}
	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = s.sanitizer.Sanitize(*req.Content)
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.SEOTitle != nil {
		article.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		article.SEODescription = *req.SEODescription
	}
	if req.SEOKeywords != nil {
		article.SEOKeywords = *req.SEOKeywords
	}
	article.UpdatedBy = &callerID

	if err := s.repo.Article.Update(ctx, article); err != nil {
		s.logger.Error("failed to update article", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, article), nil
}

func (s *articleService) Publish(ctx context.Context, id string, callerID string) (*dto.ArticleResponse, error) {
	return s.setStatus(ctx, id, "published", callerID)
}

func (s *articleService) Unpublish(ctx context.Context, id string, callerID string) (*dto.ArticleResponse, error) {
	return s.setStatus(ctx, id, "draft", callerID)
}

func (s *articleService) setStatus(ctx context.Context, id, status, callerID string) (*dto.ArticleResponse, error) {
	article, err := s.repo.Article.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	article.Status = status
	if status == "published" && article.PublishedAt == nil {
		now := s.clock()
		article.PublishedAt = &now
	}
	article.UpdatedBy = &callerID

	if err := s.repo.Article.Update(ctx, article); err != nil {
		s.logger.Error("failed to change article status", zap.Error(err))
		return nil, err
	}

	return s.toResponse(ctx, article), nil
}

func (s *articleService) Delete(ctx context.Context, id string, callerID string) error {
	if _, err := s.repo.Article.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return s.repo.Article.Delete(ctx, id, callerID)
}

// toResponse builds the full article response, attaching the editor's SEO
// length check against the configured limits.
func (s *articleService) toResponse(ctx context.Context, article *model.Article) *dto.ArticleResponse {
	resp := &dto.ArticleResponse{
		ID:             article.ArticleID,
		Slug:           article.Slug,
		Title:          article.Title,
		Content:        article.Content,
		Excerpt:        article.Excerpt,
		Status:         article.Status,
		SEOTitle:       article.SEOTitle,
		SEODescription: article.SEODescription,
		SEOKeywords:    article.SEOKeywords,
		CreatedAt:      article.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      article.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if article.PublishedAt != nil {
		v := article.PublishedAt.UTC().Format(time.RFC3339)
		resp.PublishedAt = &v
	}
	if article.Author != nil {
		resp.AuthorName = article.Author.Name
	}

	titleMax, descMax := 60, 160
	if settings, err := s.repo.Settings.Get(ctx); err == nil {
		titleMax = settings.SEOTitleMax
		descMax = settings.SEODescriptionMax
	}
	resp.SEOCheck = &dto.SEOCheck{
		TitleLength:       len([]rune(article.SEOTitle)),
		TitleMax:          titleMax,
		TitleOK:           len([]rune(article.SEOTitle)) <= titleMax,
		DescriptionLength: len([]rune(article.SEODescription)),
		DescriptionMax:    descMax,
		DescriptionOK:     len([]rune(article.SEODescription)) <= descMax,
	}

	return resp
}

func toBriefs(articles []model.Article) []dto.ArticleBrief {
	briefs := make([]dto.ArticleBrief, 0, len(articles))
	for i := range articles {
		a := &articles[i]
		brief := dto.ArticleBrief{
			ID:        a.ArticleID,
			Slug:      a.Slug,
			Title:     a.Title,
			Excerpt:   a.Excerpt,
			Status:    a.Status,
			UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
		}
		if a.PublishedAt != nil {
			v := a.PublishedAt.UTC().Format(time.RFC3339)
			brief.PublishedAt = &v
		}
		briefs = append(briefs, brief)
	}
	return briefs
}
