package interactions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Selah/internal/core/content"
)

func TestGetState_Authenticated(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	repo.On("GetCounters", mock.Anything, mock.Anything, testContentID).
		Return(&Counters{LikeCount: 10, ViewCount: 200}, nil)
	repo.On("GetFlags", mock.Anything, mock.Anything, testActor, testContentID).
		Return(&Flags{HasLiked: true, HasViewed: true}, nil)

	state, err := svc.GetState(context.Background(), testActorRaw, mediaRef())
	require.NoError(t, err)
	assert.Equal(t, int64(10), state.LikeCount)
	assert.True(t, state.HasLiked)
	assert.False(t, state.HasBookmarked)
}

func TestGetState_AnonymousSkipsFlagRead(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	repo.On("GetCounters", mock.Anything, mock.Anything, testContentID).
		Return(&Counters{LikeCount: 10}, nil)

	state, err := svc.GetState(context.Background(), "", mediaRef())
	require.NoError(t, err)
	assert.Equal(t, int64(10), state.LikeCount)
	assert.False(t, state.HasLiked)
	repo.AssertNotCalled(t, "GetFlags", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// An unresolvable actor identity on a read degrades to the anonymous view
// instead of failing the request.
func TestGetState_InvalidActorDegradesToAnonymous(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	repo.On("GetCounters", mock.Anything, mock.Anything, testContentID).
		Return(&Counters{ViewCount: 5}, nil)

	state, err := svc.GetState(context.Background(), "garbage-id", mediaRef())
	require.NoError(t, err)
	assert.Equal(t, int64(5), state.ViewCount)
	assert.False(t, state.HasViewed)
	repo.AssertNotCalled(t, "GetFlags", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetStates_SkipsMalformedIDs(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	otherID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	valid := []string{testContentID, otherID}

	repo.On("BatchCounters", mock.Anything, mock.Anything, valid).
		Return(map[string]*Counters{
			testContentID: {LikeCount: 3},
			otherID:       {LikeCount: 1},
		}, nil)
	repo.On("BatchFlags", mock.Anything, mock.Anything, testActor, valid).
		Return(map[string]*Flags{
			testContentID: {HasLiked: true},
		}, nil)

	batch, err := svc.GetStates(context.Background(), testActor, content.TypeMedia,
		[]string{testContentID, "not-an-id", otherID})
	require.NoError(t, err)
	assert.Equal(t, 1, batch.Skipped)
	require.Len(t, batch.States, 2)
	assert.True(t, batch.States[testContentID].HasLiked)
	assert.False(t, batch.States[otherID].HasLiked)
}

func TestGetStates_DeduplicatesIDs(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	repo.On("BatchCounters", mock.Anything, mock.Anything, []string{testContentID}).
		Return(map[string]*Counters{testContentID: {ViewCount: 9}}, nil)

	batch, err := svc.GetStates(context.Background(), "", content.TypeMedia,
		[]string{testContentID, testContentID, testContentID})
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Skipped)
	assert.Len(t, batch.States, 1)
}

func TestGetStates_AllMalformedShortCircuits(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	batch, err := svc.GetStates(context.Background(), testActor, content.TypeMedia,
		[]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, batch.Skipped)
	assert.Empty(t, batch.States)
	repo.AssertNotCalled(t, "BatchCounters", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetStates_AnonymousSkipsFlagQuery(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	repo.On("BatchCounters", mock.Anything, mock.Anything, []string{testContentID}).
		Return(map[string]*Counters{testContentID: {}}, nil)

	_, err := svc.GetStates(context.Background(), "", content.TypeMedia, []string{testContentID})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "BatchFlags", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListLikers_ClampsPagination(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	likers := []Liker{{ActorID: testActor, LikedAt: time.Now().UTC()}}

	repo.On("ContentExists", mock.Anything, mock.Anything, testContentID).Return(true, nil)
	repo.On("ListLikers", mock.Anything, mock.Anything, testContentID, 50, 0).
		Return(likers, nil)

	// Absurd limit and negative offset fall back to defaults.
	got, err := svc.ListLikers(context.Background(), mediaRef(), 5000, -3)
	require.NoError(t, err)
	assert.Equal(t, likers, got)
}

func TestListLikers_ContentNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := newTestService(repo, nil)

	repo.On("ContentExists", mock.Anything, mock.Anything, testContentID).Return(false, nil)

	_, err := svc.ListLikers(context.Background(), mediaRef(), 10, 0)
	assert.ErrorIs(t, err, ErrContentNotFound)
}
