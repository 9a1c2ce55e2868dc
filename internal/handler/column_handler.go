package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type ColumnService interface {
	ListColumns(ctx context.Context) ([]model.Column, error)
	CreateColumn(ctx context.Context, in service.CreateColumnInput) (*model.Column, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, in service.UpdateColumnInput) (*model.Column, error)
	DeleteColumn(ctx context.Context, id uuid.UUID) error
	ReorderColumns(ctx context.Context, ids []uuid.UUID) ([]model.Column, error)
}

type ColumnHandler struct {
	svc ColumnService
}

func NewColumnHandler(svc ColumnService) *ColumnHandler {
	return &ColumnHandler{svc: svc}
}

type CreateColumnRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	IsDoneColumn bool   `json:"is_done_column"`
}

type UpdateColumnRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=255"`
	IsDoneColumn *bool   `json:"is_done_column"`
}

type ReorderColumnsRequest struct {
	ColumnIDs []string `json:"column_ids" binding:"required,dive,uuid"`
}

// List godoc
// @Summary      List columns
// @Description  Columns in display order, each with its active cards
// @Tags         Columns
// @Produce      json
// @Success      200  {array}   ColumnResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /columns [get]
func (h *ColumnHandler) List(c *gin.Context) {
	columns, err := h.svc.ListColumns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newColumnResponses(columns))
}

// Create godoc
// @Summary      Create column
// @Description  Appends a column to the right end of the board
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Param        column  body      CreateColumnRequest  true  "Column"
// @Success      201     {object}  ColumnResponse
// @Failure      400     {object}  ErrorResponse
// @Router       /columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	column, err := h.svc.CreateColumn(c.Request.Context(), service.CreateColumnInput{
		Name:         req.Name,
		IsDoneColumn: req.IsDoneColumn,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newColumnResponse(column))
}

// Update godoc
// @Summary      Update column
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Column ID"
// @Param        column  body      UpdateColumnRequest  true  "Fields to change"
// @Success      200     {object}  ColumnResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /columns/{id} [patch]
func (h *ColumnHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	column, err := h.svc.UpdateColumn(c.Request.Context(), id, service.UpdateColumnInput{
		Name:         req.Name,
		IsDoneColumn: req.IsDoneColumn,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newColumnResponse(column))
}

// Delete godoc
// @Summary      Delete column
// @Description  Archives the column's active cards, then removes the column
// @Tags         Columns
// @Param        id  path  string  true  "Column ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteColumn(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reorder godoc
// @Summary      Reorder columns
// @Description  Each listed column takes its index as position; unknown ids are ignored
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Param        order  body      ReorderColumnsRequest  true  "New order"
// @Success      200    {array}   ColumnResponse
// @Failure      400    {object}  ErrorResponse
// @Router       /columns/reorder [put]
func (h *ColumnHandler) Reorder(c *gin.Context) {
	var req ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	ids, err := parseIDs(req.ColumnIDs)
	if err != nil {
		badRequest(c, "Invalid column ID format")
		return
	}

	columns, err := h.svc.ReorderColumns(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newColumnResponses(columns))
}
