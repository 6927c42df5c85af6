package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TrialEnjoyer/yallburru-backend/internal/dto"
	"github.com/TrialEnjoyer/yallburru-backend/internal/service"
	"github.com/TrialEnjoyer/yallburru-backend/pkg/response"
)

// ArticleHandler article CMS endpoints, public reads and admin writes.
type ArticleHandler struct {
	articleSvc service.ArticleService
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(articleSvc service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleSvc: articleSvc}
}

// ── Public endpoints ──

// ListPublished
// GET /api/v1/articles
func (h *ArticleHandler) ListPublished(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	articles, total, err := h.articleSvc.ListPublished(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, articles, total, page.GetPage(), page.GetPageSize())
}

// GetBySlug
// GET /api/v1/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	article, err := h.articleSvc.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		// Drafts and missing slugs are indistinguishable to the public.
		if errors.Is(err, service.ErrArticleNotFound) || errors.Is(err, service.ErrNotPublished) {
			response.NotFound(c, 22001, "article not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, article)
}

// ── Admin endpoints ──

// Create
// POST /api/v1/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	article, err := h.articleSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			response.Error(c, http.StatusConflict, 22002, "an article with this slug already exists")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, article)
}

// Get
// GET /api/v1/admin/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, 22001, "article not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, article)
}

// List
// GET /api/v1/admin/articles
func (h *ArticleHandler) List(c *gin.Context) {
	var req dto.ArticleListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	articles, total, err := h.articleSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, articles, total, req.GetPage(), req.GetPageSize())
}

// Update
// PUT /api/v1/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request parameters")
		return
	}

	article, err := h.articleSvc.Update(c.Request.Context(), c.Param("id"), &req, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			response.NotFound(c, 22001, "article not found")
		case errors.Is(err, service.ErrSlugTaken):
			response.Error(c, http.StatusConflict, 22002, "an article with this slug already exists")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, article)
}

// Publish
// POST /api/v1/admin/articles/:id/publish
func (h *ArticleHandler) Publish(c *gin.Context) {
	h.setStatus(c, true)
}

// Unpublish
// POST /api/v1/admin/articles/:id/unpublish
func (h *ArticleHandler) Unpublish(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *ArticleHandler) setStatus(c *gin.Context, publish bool) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var (
		article *dto.ArticleResponse
		err     error
	)
	if publish {
		article, err = h.articleSvc.Publish(c.Request.Context(), c.Param("id"), userID)
	} else {
		article, err = h.articleSvc.Unpublish(c.Request.Context(), c.Param("id"), userID)
	}
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, 22001, "article not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, article)
}

// Delete
// DELETE /api/v1/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.articleSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			response.NotFound(c, 22001, "article not found")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
