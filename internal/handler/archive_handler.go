package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type ArchiveService interface {
	ListArchive(ctx context.Context, q service.ArchiveQuery) (*service.ArchivePage, error)
	RestoreAll(ctx context.Context) ([]model.Card, error)
	ClearArchive(ctx context.Context) error
	Search(ctx context.Context, q string) ([]model.Card, error)
}

type ArchiveHandler struct {
	svc ArchiveService
}

func NewArchiveHandler(svc ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{svc: svc}
}

type ArchiveQueryParams struct {
	Q           string `form:"q"`
	Page        int    `form:"page,default=1" binding:"min=1"`
	PageSize    int    `form:"page_size,default=20" binding:"min=1,max=100"`
	RecentLimit *int   `form:"recent_limit" binding:"omitempty,min=1,max=100"`
}

// List godoc
// @Summary      List archived cards
// @Description  Most recently archived first. recent_limit, when given, replaces paging.
// @Tags         Archive
// @Produce      json
// @Param        q             query     string  false  "Title substring"
// @Param        page          query     int     false  "Page"       default(1)   minimum(1)
// @Param        page_size     query     int     false  "Page size"  default(20)  minimum(1)  maximum(100)
// @Param        recent_limit  query     int     false  "Return only the N most recent"  minimum(1)  maximum(100)
// @Success      200           {object}  ArchivePageResponse
// @Failure      400           {object}  ErrorResponse
// @Router       /archive [get]
func (h *ArchiveHandler) List(c *gin.Context) {
	var params ArchiveQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, "Invalid query parameters")
		return
	}

	q := service.ArchiveQuery{
		Query:    params.Q,
		Page:     params.Page,
		PageSize: params.PageSize,
	}
	if params.RecentLimit != nil {
		q.RecentLimit = *params.RecentLimit
	}
	page, err := h.svc.ListArchive(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newArchivePageResponse(page))
}

// RestoreAll godoc
// @Summary      Restore every archived card
// @Tags         Archive
// @Produce      json
// @Success      200  {array}   CardResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /archive/restore-all [post]
func (h *ArchiveHandler) RestoreAll(c *gin.Context) {
	cards, err := h.svc.RestoreAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponses(cards))
}

// Clear godoc
// @Summary      Delete every archived card
// @Tags         Archive
// @Success      204
// @Failure      500  {object}  ErrorResponse
// @Router       /archive/clear [post]
func (h *ArchiveHandler) Clear(c *gin.Context) {
	if err := h.svc.ClearArchive(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search godoc
// @Summary      Search active cards
// @Description  Case-insensitive title substring match, at most 50 results
// @Tags         Search
// @Produce      json
// @Param        q    query     string  false  "Title substring"
// @Success      200  {array}   CardResponse
// @Router       /search [get]
func (h *ArchiveHandler) Search(c *gin.Context) {
	cards, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponses(cards))
}
