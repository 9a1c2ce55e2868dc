package handler

import (
	"time"

	"taskflow/internal/model"
	"taskflow/internal/service"
)

type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	BgColor   *string   `json:"bg_color"`
	FgColor   *string   `json:"fg_color"`
	CreatedAt time.Time `json:"created_at"`
}

type CardResponse struct {
	ID          string        `json:"id"`
	ColumnID    *string       `json:"column_id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	ImageURL    *string       `json:"image_url"`
	DueDate     *time.Time    `json:"due_date"`
	Position    int           `json:"position"`
	IsArchived  bool          `json:"is_archived"`
	ArchivedAt  *time.Time    `json:"archived_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Tags        []TagResponse `json:"tags"`
}

type ColumnResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Position     int            `json:"position"`
	IsDoneColumn bool           `json:"is_done_column"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	Cards        []CardResponse `json:"cards"`
}

type ArchivePageResponse struct {
	Items    []CardResponse `json:"items"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

type BoardSettingsResponse struct {
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTagResponse(t model.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Color:     t.Color,
		BgColor:   t.BgColor,
		FgColor:   t.FgColor,
		CreatedAt: t.CreatedAt,
	}
}

func newTagResponses(tags []model.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, newTagResponse(t))
	}
	return out
}

func newCardResponse(c *model.Card) CardResponse {
	resp := CardResponse{
		ID:          c.ID.String(),
		Title:       c.Title,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		DueDate:     c.DueDate,
		Position:    c.Position,
		IsArchived:  c.IsArchived,
		ArchivedAt:  c.ArchivedAt,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Tags:        newTagResponses(c.Tags),
	}
	if c.ColumnID != nil {
		id := c.ColumnID.String()
		resp.ColumnID = &id
	}
	return resp
}

func newCardResponses(cards []model.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for i := range cards {
		out = append(out, newCardResponse(&cards[i]))
	}
	return out
}

func newColumnResponse(c *model.Column) ColumnResponse {
	return ColumnResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Position:     c.Position,
		IsDoneColumn: c.IsDoneColumn,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Cards:        newCardResponses(c.Cards),
	}
}

func newColumnResponses(columns []model.Column) []ColumnResponse {
	out := make([]ColumnResponse, 0, len(columns))
	for i := range columns {
		out = append(out, newColumnResponse(&columns[i]))
	}
	return out
}

func newArchivePageResponse(p *service.ArchivePage) ArchivePageResponse {
	return ArchivePageResponse{
		Items:    newCardResponses(p.Items),
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

func newBoardSettingsResponse(s *model.BoardSettings) BoardSettingsResponse {
	return BoardSettingsResponse{
		Title:     s.Title,
		Subtitle:  s.Subtitle,
		UpdatedAt: s.UpdatedAt,
	}
}
