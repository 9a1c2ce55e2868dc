package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type TagService interface {
	ListTags(ctx context.Context) ([]model.Tag, error)
	CreateTag(ctx context.Context, in service.CreateTagInput) (*model.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type TagHandler struct {
	svc TagService
}

func NewTagHandler(svc TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

type CreateTagRequest struct {
	Name    string  `json:"name" binding:"required,max=100"`
	Color   string  `json:"color" binding:"omitempty,max=50"`
	BgColor *string `json:"bg_color" binding:"omitempty,len=7,hexcolor"`
	FgColor *string `json:"fg_color" binding:"omitempty,len=7,hexcolor"`
}

// List godoc
// @Summary      List tags
// @Tags         Tags
// @Produce      json
// @Success      200  {array}   TagResponse
// @Router       /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.svc.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTagResponses(tags))
}

// Create godoc
// @Summary      Create tag
// @Tags         Tags
// @Accept       json
// @Produce      json
// @Param        tag  body      CreateTagRequest  true  "Tag"
// @Success      201  {object}  TagResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}

	tag, err := h.svc.CreateTag(c.Request.Context(), service.CreateTagInput{
		Name:    req.Name,
		Color:   req.Color,
		BgColor: req.BgColor,
		FgColor: req.FgColor,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTagResponse(*tag))
}

// Delete godoc
// @Summary      Delete tag
// @Description  Removes the tag from every card, then deletes it
// @Tags         Tags
// @Param        id  path  string  true  "Tag ID"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteTag(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
