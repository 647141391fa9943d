package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/lostfound-api/internal/dto"
	"github.com/noah-isme/lostfound-api/internal/models"
	"github.com/noah-isme/lostfound-api/internal/policy"
	appErrors "github.com/noah-isme/lostfound-api/pkg/errors"
)

type commentServiceMock struct {
	lastActor  policy.Actor
	lastQuery  dto.CommentQuery
	lastCreate dto.CreateCommentRequest
	lastID     int64
	err        error
}

func (m *commentServiceMock) Create(ctx context.Context, actor policy.Actor, req dto.CreateCommentRequest) (*models.CommentDetail, error) {
	m.lastActor, m.lastCreate = actor, req
	if m.err != nil {
		return nil, m.err
	}
	return &models.CommentDetail{}, nil
}

func (m *commentServiceMock) List(ctx context.Context, query dto.CommentQuery) ([]models.CommentDetail, *models.Pagination, error) {
	m.lastQuery = query
	return []models.CommentDetail{}, &models.Pagination{Page: 1, PageSize: 20}, m.err
}

func (m *commentServiceMock) Get(ctx context.Context, id int64) (*models.CommentDetail, error) {
	m.lastID = id
	if m.err != nil {
		return nil, m.err
	}
	return &models.CommentDetail{}, nil
}

func (m *commentServiceMock) Update(ctx context.Context, actor policy.Actor, id int64, req dto.UpdateCommentRequest) (*models.CommentDetail, error) {
	m.lastActor, m.lastID = actor, id
	if m.err != nil {
		return nil, m.err
	}
	return &models.CommentDetail{}, nil
}

func (m *commentServiceMock) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	m.lastActor, m.lastID = actor, id
	return m.err
}

func TestCommentHandlerListIsPublic(t *testing.T) {
	svc := &commentServiceMock{}
	h := NewCommentHandler(svc)

	c, w := newRequestContext(http.MethodGet, "/comments?page=2", "", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.lastQuery.Page)
}

func TestCommentHandlerCreate(t *testing.T) {
	svc := &commentServiceMock{}
	h := NewCommentHandler(svc)

	c, w := newRequestContext(http.MethodPost, "/comments", `{"report":1,"content":"Seen near the gym"}`, studentClaims)
	h.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "owner", svc.lastActor.ID)
}

func TestCommentHandlerMutationErrors(t *testing.T) {
	svc := &commentServiceMock{err: appErrors.Clone(appErrors.ErrForbidden, "")}
	h := NewCommentHandler(svc)

	c, w := newRequestContext(http.MethodPatch, "/comments/8", `{"content":"edit"}`, adminClaims, idParam("8"))
	h.Update(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(8), svc.lastID)

	c, w = newRequestContext(http.MethodDelete, "/comments/x", "", studentClaims, idParam("x"))
	h.Delete(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
