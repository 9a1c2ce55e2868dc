package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"taskflow/internal/handler"
	"taskflow/internal/model"
	"taskflow/internal/ordering"
	"taskflow/internal/repository"
	"taskflow/internal/service"
)

// Мок сервиса доски
type MockBoardService struct {
	mock.Mock
}

func (m *MockBoardService) ListColumns(ctx context.Context) ([]model.Column, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockBoardService) CreateColumn(ctx context.Context, in service.CreateColumnInput) (*model.Column, error) {
	args := m.Called(ctx, in)
	col := args.Get(0)
	if col == nil {
		return nil, args.Error(1)
	}
	return col.(*model.Column), args.Error(1)
}

func (m *MockBoardService) UpdateColumn(ctx context.Context, id uuid.UUID, in service.UpdateColumnInput) (*model.Column, error) {
	args := m.Called(ctx, id, in)
	col := args.Get(0)
	if col == nil {
		return nil, args.Error(1)
	}
	return col.(*model.Column), args.Error(1)
}

func (m *MockBoardService) DeleteColumn(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBoardService) ReorderColumns(ctx context.Context, ids []uuid.UUID) ([]model.Column, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockBoardService) card(args mock.Arguments) (*model.Card, error) {
	card := args.Get(0)
	if card == nil {
		return nil, args.Error(1)
	}
	return card.(*model.Card), args.Error(1)
}

func (m *MockBoardService) GetCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	return m.card(m.Called(ctx, id))
}

func (m *MockBoardService) CreateCard(ctx context.Context, columnID uuid.UUID, in service.CreateCardInput) (*model.Card, error) {
	return m.card(m.Called(ctx, columnID, in))
}

func (m *MockBoardService) UpdateCard(ctx context.Context, id uuid.UUID, in service.UpdateCardInput) (*model.Card, error) {
	return m.card(m.Called(ctx, id, in))
}

func (m *MockBoardService) DeleteCard(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBoardService) MoveCard(ctx context.Context, in service.MoveCardInput) (*model.Card, error) {
	return m.card(m.Called(ctx, in))
}

func (m *MockBoardService) ArchiveCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	return m.card(m.Called(ctx, id))
}

func (m *MockBoardService) RestoreCard(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	return m.card(m.Called(ctx, id))
}

func (m *MockBoardService) ListArchive(ctx context.Context, q service.ArchiveQuery) (*service.ArchivePage, error) {
	args := m.Called(ctx, q)
	page := args.Get(0)
	if page == nil {
		return nil, args.Error(1)
	}
	return page.(*service.ArchivePage), args.Error(1)
}

func (m *MockBoardService) RestoreAll(ctx context.Context) ([]model.Card, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockBoardService) ClearArchive(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBoardService) Search(ctx context.Context, q string) ([]model.Card, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Card), args.Error(1)
}

func (m *MockBoardService) ListTags(ctx context.Context) ([]model.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Tag), args.Error(1)
}

func (m *MockBoardService) CreateTag(ctx context.Context, in service.CreateTagInput) (*model.Tag, error) {
	args := m.Called(ctx, in)
	tag := args.Get(0)
	if tag == nil {
		return nil, args.Error(1)
	}
	return tag.(*model.Tag), args.Error(1)
}

func (m *MockBoardService) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBoardService) GetBoardSettings(ctx context.Context) (*model.BoardSettings, error) {
	args := m.Called(ctx)
	return args.Get(0).(*model.BoardSettings), args.Error(1)
}

func (m *MockBoardService) UpdateBoardSettings(ctx context.Context, in service.UpdateBoardSettingsInput) (*model.BoardSettings, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(*model.BoardSettings), args.Error(1)
}

func (m *MockBoardService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func setupTest() (*gin.Engine, *MockBoardService) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := new(MockBoardService)

	columns := handler.NewColumnHandler(svc)
	cards := handler.NewCardHandler(svc)
	archive := handler.NewArchiveHandler(svc)
	tags := handler.NewTagHandler(svc)
	settings := handler.NewBoardSettingsHandler(svc)
	health := handler.NewHealthHandler(svc)

	r.GET("/columns", columns.List)
	r.POST("/columns", columns.Create)
	r.PUT("/columns/reorder", columns.Reorder)
	r.PATCH("/columns/:id", columns.Update)
	r.DELETE("/columns/:id", columns.Delete)
	r.POST("/columns/:id/cards", cards.Create)
	r.PUT("/cards/move", cards.Move)
	r.GET("/cards/:id", cards.Get)
	r.PATCH("/cards/:id", cards.Update)
	r.DELETE("/cards/:id", cards.Delete)
	r.POST("/cards/:id/archive", cards.Archive)
	r.POST("/cards/:id/restore", cards.Restore)
	r.GET("/archive", archive.List)
	r.POST("/archive/restore-all", archive.RestoreAll)
	r.POST("/archive/clear", archive.Clear)
	r.GET("/search", archive.Search)
	r.GET("/tags", tags.List)
	r.POST("/tags", tags.Create)
	r.DELETE("/tags/:id", tags.Delete)
	r.GET("/board-settings", settings.Get)
	r.PATCH("/board-settings", settings.Update)
	r.GET("/health", health.Check)
	return r, svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body.Error
}

func TestColumnList_NestsCards(t *testing.T) {
	// Arrange
	router, svc := setupTest()
	colID := uuid.New()
	svc.On("ListColumns", mock.Anything).Return([]model.Column{{
		ID:    colID,
		Name:  "To Do",
		Cards: []model.Card{{ID: uuid.New(), ColumnID: &colID, Title: "x"}},
	}}, nil)

	// Act
	resp := doJSON(router, http.MethodGet, "/columns", nil)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body []handler.ColumnResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, "To Do", body[0].Name)
	assert.Len(t, body[0].Cards, 1)
	assert.Equal(t, colID.String(), *body[0].Cards[0].ColumnID)
	assert.NotNil(t, body[0].Cards[0].Tags)
	svc.AssertExpectations(t)
}

func TestColumnCreate(t *testing.T) {
	// Arrange
	router, svc := setupTest()
	svc.On("CreateColumn", mock.Anything, service.CreateColumnInput{Name: "Done", IsDoneColumn: true}).
		Return(&model.Column{ID: uuid.New(), Name: "Done", Position: 2, IsDoneColumn: true}, nil)

	// Act
	resp := doJSON(router, http.MethodPost, "/columns", map[string]any{"name": "Done", "is_done_column": true})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body handler.ColumnResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Position)
	assert.Empty(t, body.Cards)
	svc.AssertExpectations(t)
}

func TestColumnCreate_MissingName(t *testing.T) {
	router, svc := setupTest()

	resp := doJSON(router, http.MethodPost, "/columns", map[string]any{"is_done_column": true})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "CreateColumn", mock.Anything, mock.Anything)
}

func TestColumnUpdate_InvalidID(t *testing.T) {
	router, _ := setupTest()

	resp := doJSON(router, http.MethodPatch, "/columns/not-a-uuid", map[string]any{"name": "x"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "Invalid ID format", decodeError(t, resp))
}

func TestColumnDelete(t *testing.T) {
	router, svc := setupTest()
	present, missing := uuid.New(), uuid.New()
	svc.On("DeleteColumn", mock.Anything, present).Return(nil)
	svc.On("DeleteColumn", mock.Anything, missing).Return(repository.ErrColumnNotFound)

	resp := doJSON(router, http.MethodDelete, "/columns/"+present.String(), nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(router, http.MethodDelete, "/columns/"+missing.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "column not found", decodeError(t, resp))
	svc.AssertExpectations(t)
}

func TestColumnReorder(t *testing.T) {
	router, svc := setupTest()
	a, b := uuid.New(), uuid.New()
	svc.On("ReorderColumns", mock.Anything, []uuid.UUID{b, a}).Return([]model.Column{
		{ID: b, Name: "B", Position: 0},
		{ID: a, Name: "A", Position: 1},
	}, nil)

	resp := doJSON(router, http.MethodPut, "/columns/reorder", map[string]any{"column_ids": []string{b.String(), a.String()}})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []handler.ColumnResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "B", body[0].Name)
	svc.AssertExpectations(t)

	resp = doJSON(router, http.MethodPut, "/columns/reorder", map[string]any{"column_ids": []string{"nope"}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCardCreate(t *testing.T) {
	// Arrange
	router, svc := setupTest()
	colID := uuid.New()
	tagID := uuid.New()
	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.On("CreateCard", mock.Anything, colID, mock.MatchedBy(func(in service.CreateCardInput) bool {
		return in.Title == "Ship it" &&
			len(in.TagIDs) == 1 && in.TagIDs[0] == tagID &&
			in.DueDate != nil && in.DueDate.Equal(due)
	})).Return(&model.Card{
		ID:       uuid.New(),
		ColumnID: &colID,
		Title:    "Ship it",
		DueDate:  &due,
		Tags:     []model.Tag{{ID: tagID, Name: "Release", Color: "green"}},
	}, nil)

	// Act
	resp := doJSON(router, http.MethodPost, "/columns/"+colID.String()+"/cards", map[string]any{
		"title":    "Ship it",
		"due_date": due.Format(time.RFC3339),
		"tag_ids":  []string{tagID.String()},
	})

	// Assert
	assert.Equal(t, http.StatusCreated, resp.Code)
	var body handler.CardResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Ship it", body.Title)
	assert.Len(t, body.Tags, 1)
	assert.Equal(t, "Release", body.Tags[0].Name)
	svc.AssertExpectations(t)
}

func TestCardCreate_Errors(t *testing.T) {
	router, svc := setupTest()
	colID := uuid.New()
	svc.On("CreateCard", mock.Anything, colID, mock.Anything).Return(nil, repository.ErrColumnNotFound)

	resp := doJSON(router, http.MethodPost, "/columns/"+colID.String()+"/cards", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(router, http.MethodPost, "/columns/"+colID.String()+"/cards", map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPost, "/columns/"+colID.String()+"/cards", map[string]any{"title": "x", "tag_ids": []string{"bad"}})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPost, "/columns/"+colID.String()+"/cards", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	svc.AssertNumberOfCalls(t, "CreateCard", 1)
}

func TestCardUpdate_TagIDsPresence(t *testing.T) {
	router, svc := setupTest()
	id := uuid.New()
	svc.On("UpdateCard", mock.Anything, id, mock.MatchedBy(func(in service.UpdateCardInput) bool {
		return in.TagIDs == nil && in.Title != nil && *in.Title == "renamed"
	})).Return(&model.Card{ID: id, Title: "renamed"}, nil).Once()
	svc.On("UpdateCard", mock.Anything, id, mock.MatchedBy(func(in service.UpdateCardInput) bool {
		return in.TagIDs != nil && len(*in.TagIDs) == 0
	})).Return(&model.Card{ID: id, Title: "renamed"}, nil).Once()

	resp := doJSON(router, http.MethodPatch, "/cards/"+id.String(), map[string]any{"title": "renamed"})
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, http.MethodPatch, "/cards/"+id.String(), map[string]any{"tag_ids": []string{}})
	assert.Equal(t, http.StatusOK, resp.Code)

	svc.AssertExpectations(t)
}

func TestCardMove(t *testing.T) {
	// Arrange
	router, svc := setupTest()
	cardID, colID := uuid.New(), uuid.New()
	svc.On("MoveCard", mock.Anything, service.MoveCardInput{CardID: cardID, TargetColumnID: colID, Position: 0}).
		Return(&model.Card{ID: cardID, ColumnID: &colID, Position: 0}, nil)

	// Act
	resp := doJSON(router, http.MethodPut, "/cards/move", map[string]any{
		"card_id":          cardID.String(),
		"target_column_id": colID.String(),
		"position":         0,
	})

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.CardResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, colID.String(), *body.ColumnID)
	assert.Equal(t, 0, body.Position)
	svc.AssertExpectations(t)
}

func TestCardMove_Rejections(t *testing.T) {
	router, svc := setupTest()
	archived, missing, colID := uuid.New(), uuid.New(), uuid.New()
	svc.On("MoveCard", mock.Anything, mock.MatchedBy(func(in service.MoveCardInput) bool { return in.CardID == archived })).
		Return(nil, repository.ErrCardArchived)
	svc.On("MoveCard", mock.Anything, mock.MatchedBy(func(in service.MoveCardInput) bool { return in.CardID == missing })).
		Return(nil, repository.ErrCardNotFound)

	resp := doJSON(router, http.MethodPut, "/cards/move", map[string]any{"card_id": archived.String(), "target_column_id": colID.String(), "position": 1})
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "card is archived", decodeError(t, resp))

	resp = doJSON(router, http.MethodPut, "/cards/move", map[string]any{"card_id": missing.String(), "target_column_id": colID.String(), "position": 1})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(router, http.MethodPut, "/cards/move", map[string]any{"card_id": missing.String(), "target_column_id": colID.String()})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPut, "/cards/move", map[string]any{"card_id": missing.String(), "target_column_id": colID.String(), "position": -1})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPut, "/cards/move", map[string]any{"card_id": "not-a-uuid", "target_column_id": colID.String(), "position": 0})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, http.MethodPut, "/cards/move", map[string]any{"card_id": missing.String(), "target_column_id": "{" + colID.String() + "}", "position": 0})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	svc.AssertNumberOfCalls(t, "MoveCard", 2)
}

func TestCardMove_PositionBounds(t *testing.T) {
	router, svc := setupTest()
	cardID, colID := uuid.New(), uuid.New()
	svc.On("MoveCard", mock.Anything, service.MoveCardInput{CardID: cardID, TargetColumnID: colID, Position: ordering.MaxPosition}).
		Return(&model.Card{ID: cardID, ColumnID: &colID, Position: ordering.MaxPosition}, nil)

	tests := []struct {
		name     string
		position any
		want     int
	}{
		{"largest accepted", ordering.MaxPosition, http.StatusOK},
		{"one past the limit", ordering.MaxPosition + 1, http.StatusBadRequest},
		{"beyond 32 bits", int64(math.MaxInt32) + 1, http.StatusBadRequest},
		{"max int64", int64(math.MaxInt64), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(router, http.MethodPut, "/cards/move", map[string]any{
				"card_id":          cardID.String(),
				"target_column_id": colID.String(),
				"position":         tt.position,
			})
			assert.Equal(t, tt.want, resp.Code)
		})
	}
	svc.AssertNumberOfCalls(t, "MoveCard", 1)
}

func TestCardArchiveRestore(t *testing.T) {
	router, svc := setupTest()
	id := uuid.New()
	now := time.Now().UTC()
	svc.On("ArchiveCard", mock.Anything, id).Return(&model.Card{ID: id, IsArchived: true, ArchivedAt: &now}, nil)
	svc.On("RestoreCard", mock.Anything, id).Return(&model.Card{ID: id}, nil)

	resp := doJSON(router, http.MethodPost, "/cards/"+id.String()+"/archive", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.CardResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.IsArchived)
	assert.NotNil(t, body.ArchivedAt)

	resp = doJSON(router, http.MethodPost, "/cards/"+id.String()+"/restore", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestCardGet_InternalErrorIsHidden(t *testing.T) {
	router, svc := setupTest()
	id := uuid.New()
	svc.On("GetCard", mock.Anything, id).Return(nil, assert.AnError)

	resp := doJSON(router, http.MethodGet, "/cards/"+id.String(), nil)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Equal(t, "Internal server error", decodeError(t, resp))
}

func TestArchiveList_Defaults(t *testing.T) {
	router, svc := setupTest()
	svc.On("ListArchive", mock.Anything, service.ArchiveQuery{Page: 1, PageSize: 20}).
		Return(&service.ArchivePage{Total: 0, Page: 1, PageSize: 20}, nil)

	resp := doJSON(router, http.MethodGet, "/archive", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.ArchivePageResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Page)
	assert.Equal(t, 20, body.PageSize)
	assert.NotNil(t, body.Items)
	svc.AssertExpectations(t)
}

func TestArchiveList_Params(t *testing.T) {
	router, svc := setupTest()
	svc.On("ListArchive", mock.Anything, service.ArchiveQuery{Query: "bug", Page: 2, PageSize: 5, RecentLimit: 3}).
		Return(&service.ArchivePage{Total: 9, Page: 2, PageSize: 5}, nil)

	resp := doJSON(router, http.MethodGet, "/archive?q=bug&page=2&page_size=5&recent_limit=3", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)

	for _, query := range []string{"page=0", "page_size=101", "page_size=0", "recent_limit=0", "recent_limit=101", "page=x"} {
		resp = doJSON(router, http.MethodGet, "/archive?"+query, nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code, query)
	}
}

func TestArchiveRestoreAllAndClear(t *testing.T) {
	router, svc := setupTest()
	svc.On("RestoreAll", mock.Anything).Return([]model.Card{{ID: uuid.New(), Title: "back"}}, nil)
	svc.On("ClearArchive", mock.Anything).Return(nil)

	resp := doJSON(router, http.MethodPost, "/archive/restore-all", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	var body []handler.CardResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body, 1)

	resp = doJSON(router, http.MethodPost, "/archive/clear", nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestSearch_PassesQuery(t *testing.T) {
	router, svc := setupTest()
	svc.On("Search", mock.Anything, "").Return([]model.Card{}, nil)
	svc.On("Search", mock.Anything, "login").Return([]model.Card{{ID: uuid.New(), Title: "Fix login"}}, nil)

	resp := doJSON(router, http.MethodGet, "/search?q=", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())

	resp = doJSON(router, http.MethodGet, "/search?q=login", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestTagCreate(t *testing.T) {
	router, svc := setupTest()
	bg := "#ff0000"
	svc.On("CreateTag", mock.Anything, service.CreateTagInput{Name: "Bug", Color: "red", BgColor: &bg}).
		Return(&model.Tag{ID: uuid.New(), Name: "Bug", Color: "red", BgColor: &bg}, nil).Once()
	svc.On("CreateTag", mock.Anything, service.CreateTagInput{Name: "Bug"}).
		Return(nil, repository.ErrTagNameTaken).Once()

	resp := doJSON(router, http.MethodPost, "/tags", map[string]any{"name": "Bug", "color": "red", "bg_color": bg})
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(router, http.MethodPost, "/tags", map[string]any{"name": "Bug"})
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "tag with this name already exists", decodeError(t, resp))

	resp = doJSON(router, http.MethodPost, "/tags", map[string]any{"name": "Bad", "bg_color": "red"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	svc.AssertExpectations(t)
}

func TestTagDelete_NotFound(t *testing.T) {
	router, svc := setupTest()
	id := uuid.New()
	svc.On("DeleteTag", mock.Anything, id).Return(repository.ErrTagNotFound)

	resp := doJSON(router, http.MethodDelete, "/tags/"+id.String(), nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBoardSettings(t *testing.T) {
	router, svc := setupTest()
	title := "Roadmap"
	svc.On("GetBoardSettings", mock.Anything).
		Return(&model.BoardSettings{ID: 1, Title: model.DefaultBoardTitle, Subtitle: model.DefaultBoardSubtitle}, nil)
	svc.On("UpdateBoardSettings", mock.Anything, service.UpdateBoardSettingsInput{Title: &title}).
		Return(&model.BoardSettings{ID: 1, Title: title, Subtitle: model.DefaultBoardSubtitle}, nil)

	resp := doJSON(router, http.MethodGet, "/board-settings", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	var body handler.BoardSettingsResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, model.DefaultBoardTitle, body.Title)

	resp = doJSON(router, http.MethodPatch, "/board-settings", map[string]any{"title": title})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Roadmap", body.Title)
	svc.AssertExpectations(t)
}

func TestHealth(t *testing.T) {
	router, svc := setupTest()
	svc.On("Ping", mock.Anything).Return(nil).Once()
	svc.On("Ping", mock.Anything).Return(assert.AnError).Once()

	resp := doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}
