package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type CardService interface {
	GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error)
	CreateCard(ctx context.Context, columnID uuid.UUID, in service.CreateCardInput) (*model.Card, error)
	UpdateCard(ctx context.Context, id uuid.UUID, in service.UpdateCardInput) (*model.Card, error)
	DeleteCard(ctx context.Context, id uuid.UUID) error
	MoveCard(ctx context.Context, in service.MoveCardInput) (*model.Card, error)
	ArchiveCard(ctx context.Context, id uuid.UUID) (*model.Card, error)
	RestoreCard(ctx context.Context, id uuid.UUID) (*model.Card, error)
}

type CardHandler struct {
	svc CardService
}

func NewCardHandler(svc CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

type CreateCardRequest struct {
	Title       string     `json:"title" binding:"required,max=500"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
	TagIDs      []string   `json:"tag_ids" binding:"omitempty,dive,uuid"`
}

type UpdateCardRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string    `json:"description"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,max=2000"`
	DueDate     *time.Time `json:"due_date"`
	TagIDs      *[]string  `json:"tag_ids" binding:"omitempty,dive,uuid"`
}

type MoveCardRequest struct {
	CardID         string `json:"card_id" binding:"required,uuid"`
	TargetColumnID string `json:"target_column_id" binding:"required,uuid"`
	// max is ordering.MaxPosition
	Position *int `json:"position" binding:"required,min=0,max=1000000"`
}

// Get godoc
// @Summary      Get card
// @Tags         Cards
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  CardResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cards/{id} [get]
func (h *CardHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := h.svc.GetCard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// Create godoc
// @Summary      Create card
// @Description  Appends a card to the end of a column
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Column ID"
// @Param        card  body      CreateCardRequest  true  "Card"
// @Success      201   {object}  CardResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /columns/{id}/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	columnID, ok := pathID(c)
	if !ok {
		return
	}
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	tagIDs, err := parseIDs(req.TagIDs)
	if err != nil {
		badRequest(c, "Invalid tag ID format")
		return
	}

	card, err := h.svc.CreateCard(c.Request.Context(), columnID, service.CreateCardInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DueDate:     req.DueDate,
		TagIDs:      tagIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCardResponse(card))
}

// Update godoc
// @Summary      Update card
// @Description  Changes the given fields; tag_ids, when present, replaces the whole tag set
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Card ID"
// @Param        card  body      UpdateCardRequest  true  "Fields to change"
// @Success      200   {object}  CardResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	in := service.UpdateCardInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DueDate:     req.DueDate,
	}
	if req.TagIDs != nil {
		tagIDs, err := parseIDs(*req.TagIDs)
		if err != nil {
			badRequest(c, "Invalid tag ID format")
			return
		}
		in.TagIDs = &tagIDs
	}

	card, err := h.svc.UpdateCard(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// Delete godoc
// @Summary      Delete card
// @Tags         Cards
// @Param        id  path  string  true  "Card ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCard(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Move godoc
// @Summary      Move card
// @Description  Places a card at a position in a column, shifting the cards at and after it
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Param        move  body      MoveCardRequest  true  "Target"
// @Success      200   {object}  CardResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse
// @Router       /cards/move [put]
func (h *CardHandler) Move(c *gin.Context) {
	var req MoveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		badRequest(c, "Invalid card ID format")
		return
	}
	columnID, err := uuid.Parse(req.TargetColumnID)
	if err != nil {
		badRequest(c, "Invalid column ID format")
		return
	}

	card, err := h.svc.MoveCard(c.Request.Context(), service.MoveCardInput{
		CardID:         cardID,
		TargetColumnID: columnID,
		Position:       *req.Position,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// Archive godoc
// @Summary      Archive card
// @Tags         Cards
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  CardResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cards/{id}/archive [post]
func (h *CardHandler) Archive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := h.svc.ArchiveCard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// Restore godoc
// @Summary      Restore card
// @Description  Returns an archived card to the end of its column, or of the first column when its own is gone
// @Tags         Cards
// @Produce      json
// @Param        id   path      string  true  "Card ID"
// @Success      200  {object}  CardResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /cards/{id}/restore [post]
func (h *CardHandler) Restore(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	card, err := h.svc.RestoreCard(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}
