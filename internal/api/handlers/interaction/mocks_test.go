package interaction

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"Selah/internal/api/middleware"
	"Selah/internal/core/content"
	"Selah/internal/core/interactions"
)

const (
	testActor     = "b2c7e9d0-4a1f-4e8b-9f3c-1d2e3f4a5b6c"
	testContentID = "0e984725-c51c-4bf4-9960-e1c80e27aba0"
)

// mockService implements interactions.Service for testing
type mockService struct {
	mock.Mock
}

func (m *mockService) ToggleLike(ctx context.Context, actorID string, ref interactions.ContentRef) (*interactions.ToggleResult, error) {
	args := m.Called(ctx, actorID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.ToggleResult), args.Error(1)
}

func (m *mockService) ToggleBookmark(ctx context.Context, actorID string, ref interactions.ContentRef) (*interactions.ToggleResult, error) {
	args := m.Called(ctx, actorID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.ToggleResult), args.Error(1)
}

func (m *mockService) RecordView(ctx context.Context, actorID string, ref interactions.ContentRef, e interactions.Engagement) (*interactions.ViewResult, error) {
	args := m.Called(ctx, actorID, ref, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.ViewResult), args.Error(1)
}

func (m *mockService) RecordShare(ctx context.Context, actorID string, ref interactions.ContentRef) (int64, error) {
	args := m.Called(ctx, actorID, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) RecordComment(ctx context.Context, actorID string, ref interactions.ContentRef) (int64, error) {
	args := m.Called(ctx, actorID, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) RemoveComment(ctx context.Context, actorID string, ref interactions.ContentRef) (int64, error) {
	args := m.Called(ctx, actorID, ref)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockService) GetState(ctx context.Context, actorID string, ref interactions.ContentRef) (*interactions.State, error) {
	args := m.Called(ctx, actorID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.State), args.Error(1)
}

func (m *mockService) GetStates(ctx context.Context, actorID string, contentType content.Type, contentIDs []string) (*interactions.BatchStates, error) {
	args := m.Called(ctx, actorID, contentType, contentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*interactions.BatchStates), args.Error(1)
}

func (m *mockService) ListLikers(ctx context.Context, ref interactions.ContentRef, limit, offset int) ([]interactions.Liker, error) {
	args := m.Called(ctx, ref, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interactions.Liker), args.Error(1)
}

// serve routes the request through a chi router so URL params resolve, with
// the actor id injected as the auth middleware would.
func serve(method, path string, handler http.HandlerFunc, req *http.Request, actorID string) *httptest.ResponseRecorder {
	if actorID != "" {
		req = req.WithContext(middleware.SetTestActorID(req.Context(), actorID))
	}
	r := chi.NewRouter()
	r.MethodFunc(method, path, handler)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
