package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type BoardSettingsService interface {
	GetBoardSettings(ctx context.Context) (*model.BoardSettings, error)
	UpdateBoardSettings(ctx context.Context, in service.UpdateBoardSettingsInput) (*model.BoardSettings, error)
}

type BoardSettingsHandler struct {
	svc BoardSettingsService
}

func NewBoardSettingsHandler(svc BoardSettingsService) *BoardSettingsHandler {
	return &BoardSettingsHandler{svc: svc}
}

type UpdateBoardSettingsRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=255"`
	Subtitle *string `json:"subtitle" binding:"omitempty,max=500"`
}

// Get godoc
// @Summary      Get board settings
// @Tags         Board Settings
// @Produce      json
// @Success      200  {object}  BoardSettingsResponse
// @Router       /board-settings [get]
func (h *BoardSettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.GetBoardSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBoardSettingsResponse(settings))
}

// Update godoc
// @Summary      Update board settings
// @Tags         Board Settings
// @Accept       json
// @Produce      json
// @Param        settings  body      UpdateBoardSettingsRequest  true  "Fields to change"
// @Success      200       {object}  BoardSettingsResponse
// @Failure      400       {object}  ErrorResponse
// @Router       /board-settings [patch]
func (h *BoardSettingsHandler) Update(c *gin.Context) {
	var req UpdateBoardSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request")
		return
	}
	settings, err := h.svc.UpdateBoardSettings(c.Request.Context(), service.UpdateBoardSettingsInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBoardSettingsResponse(settings))
}
