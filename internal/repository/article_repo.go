package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/TrialEnjoyer/yallburru-backend/internal/model"
	pkgerrors "github.com/TrialEnjoyer/yallburru-backend/pkg/errors"
)

// ArticleRepository article data access.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	GetByID(ctx context.Context, id string) (*model.Article, error)
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)
	// Update applies an optimistic-lock versioned update.
	Update(ctx context.Context, article *model.Article) error
	Delete(ctx context.Context, id string, deletedBy string) error
	List(ctx context.Context, status string, offset, limit int) ([]model.Article, int64, error)
}

// articleRepo GORM implementation of ArticleRepository.
type articleRepo struct {
	db *gorm.DB
}

// NewArticleRepo creates an ArticleRepository.
func NewArticleRepo(db *gorm.DB) ArticleRepository {
	return &articleRepo{db: db}
}

func (r *articleRepo) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepo) GetByID(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("article_id = ?", id).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("slug = ?", slug).
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepo) Update(ctx context.Context, article *model.Article) error {
	oldVersion := article.Version
	result := r.db.WithContext(ctx).
		Model(article).
		Where("article_id = ? AND version = ?", article.ArticleID, oldVersion).
		Updates(map[string]interface{}{
			"slug":            article.Slug,
			"title":           article.Title,
			"content":         article.Content,
			"excerpt":         article.Excerpt,
			"status":          article.Status,
			"published_at":    article.PublishedAt,
			"seo_title":       article.SEOTitle,
			"seo_description": article.SEODescription,
			"seo_keywords":    article.SEOKeywords,
			"updated_by":      article.UpdatedBy,
			"version":         oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	article.Version = oldVersion + 1
	return nil
}

func (r *articleRepo) Delete(ctx context.Context, id string, deletedBy string) error {
	return r.db.WithContext(ctx).
		Model(&model.Article{}).
		Where("article_id = ?", id).
		Updates(map[string]interface{}{
			"deleted_at": gorm.Expr("CURRENT_TIMESTAMP"),
			"deleted_by": deletedBy,
		}).Error
}

func (r *articleRepo) List(ctx context.Context, status string, offset, limit int) ([]model.Article, int64, error) {
	var articles []model.Article
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Article{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Offset(offset).Limit(limit).
		Order("COALESCE(published_at, created_at) DESC").
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}
