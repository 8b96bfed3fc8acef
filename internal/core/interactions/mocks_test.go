package interactions

import (
	"context"

	"github.com/stretchr/testify/mock"

	"Selah/internal/core/content"
)

// mockRepository implements Repository for testing
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) ContentExists(ctx context.Context, def content.Definition, contentID string) (bool, error) {
	args := m.Called(ctx, def, contentID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) ToggleActive(ctx context.Context, def content.Definition, actorID, contentID string, kind Kind) (bool, int64, error) {
	args := m.Called(ctx, def, actorID, contentID, kind)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) OriginateView(ctx context.Context, def content.Definition, actorID, contentID string, e Engagement) (bool, int64, error) {
	args := m.Called(ctx, def, actorID, contentID, e)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) TouchView(ctx context.Context, def content.Definition, actorID, contentID string, e Engagement) (int64, error) {
	args := m.Called(ctx, def, actorID, contentID, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) InsertShare(ctx context.Context, def content.Definition, actorID, contentID string) (int64, error) {
	args := m.Called(ctx, def, actorID, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) InsertComment(ctx context.Context, def content.Definition, actorID, contentID string) (int64, error) {
	args := m.Called(ctx, def, actorID, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) SoftRemoveComment(ctx context.Context, def content.Definition, actorID, contentID string) (int64, error) {
	args := m.Called(ctx, def, actorID, contentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository) GetCounters(ctx context.Context, def content.Definition, contentID string) (*Counters, error) {
	args := m.Called(ctx, def, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Counters), args.Error(1)
}

func (m *mockRepository) GetFlags(ctx context.Context, def content.Definition, actorID, contentID string) (*Flags, error) {
	args := m.Called(ctx, def, actorID, contentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Flags), args.Error(1)
}

func (m *mockRepository) BatchCounters(ctx context.Context, def content.Definition, contentIDs []string) (map[string]*Counters, error) {
	args := m.Called(ctx, def, contentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*Counters), args.Error(1)
}

func (m *mockRepository) BatchFlags(ctx context.Context, def content.Definition, actorID string, contentIDs []string) (map[string]*Flags, error) {
	args := m.Called(ctx, def, actorID, contentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*Flags), args.Error(1)
}

func (m *mockRepository) ListLikers(ctx context.Context, def content.Definition, contentID string, limit, offset int) ([]Liker, error) {
	args := m.Called(ctx, def, contentID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Liker), args.Error(1)
}

// mockNotifier implements Notifier for testing
type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Publish(ctx context.Context, event Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// newTestService builds a service with synchronous publishing so tests can
// assert on notifier calls deterministically.
func newTestService(repo Repository, notifier Notifier) *interactionService {
	svc := NewService(repo, notifier, nil).(*interactionService)
	svc.publishAsync = false
	return svc
}
