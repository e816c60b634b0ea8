package users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/croptrack-go/apperror"
	"github.com/user/croptrack-go/auth"
)

// fakeService is an in-memory Service used to exercise the handler without
// a database.
type fakeService struct {
	profiles map[int]*ProfileResponse
}

func (f *fakeService) GetProfile(_ context.Context, userID int) (*ProfileResponse, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	return profile, nil
}

func withUser(req *http.Request, userID int) *http.Request {
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestHandleGetProfile(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	svc := &fakeService{profiles: map[int]*ProfileResponse{
		7: {ID: 7, Username: "alice", CreatedAt: created},
	}}
	h := NewUserHandlers(svc)

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), 7)
	rec := httptest.NewRecorder()
	h.HandleGetProfile()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestHandleGetProfile_AccountGone(t *testing.T) {
	t.Parallel()

	h := NewUserHandlers(&fakeService{})

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/users/me", nil), 7)
	rec := httptest.NewRecorder()
	h.HandleGetProfile()(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)
}

func TestHandleGetProfile_Unauthenticated(t *testing.T) {
	t.Parallel()

	h := NewUserHandlers(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	h.HandleGetProfile()(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)
}
