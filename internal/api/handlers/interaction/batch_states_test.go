package interaction

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Selah/internal/core/content"
	"Selah/internal/core/interactions"
)

const batchPath = "/content/batch"

func batchRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, batchPath, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBatchStatesHandler_OrderedWithSkipped(t *testing.T) {
	svc := new(mockService)
	handler := NewBatchStatesHandler(svc)

	otherID := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	ids := []string{otherID, "not-an-id", testContentID}

	svc.On("GetStates", mock.Anything, testActor, content.TypeMedia, ids).
		Return(&interactions.BatchStates{
			States: map[string]*interactions.State{
				testContentID: {Counters: interactions.Counters{LikeCount: 3}},
				otherID:       {Counters: interactions.Counters{LikeCount: 1}},
			},
			Skipped: 1,
		}, nil)

	req := batchRequest(t, BatchStatesInput{ContentType: "media", ContentIDs: ids})
	w := serve(http.MethodPost, batchPath, handler.HandleBatchStates, req, testActor)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []struct {
			ContentID string `json:"contentId"`
			LikeCount int64  `json:"likeCount"`
		} `json:"items"`
		Skipped int `json:"skipped"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, 1, resp.Skipped)
	require.Len(t, resp.Items, 2)
	// Items come back in request order with the malformed id dropped.
	assert.Equal(t, otherID, resp.Items[0].ContentID)
	assert.Equal(t, testContentID, resp.Items[1].ContentID)
	assert.Equal(t, int64(3), resp.Items[1].LikeCount)
}

func TestBatchStatesHandler_AnonymousAllowed(t *testing.T) {
	svc := new(mockService)
	handler := NewBatchStatesHandler(svc)

	svc.On("GetStates", mock.Anything, "", content.TypeMedia, []string{testContentID}).
		Return(&interactions.BatchStates{
			States: map[string]*interactions.State{
				testContentID: {Counters: interactions.Counters{ViewCount: 12}},
			},
		}, nil)

	req := batchRequest(t, BatchStatesInput{ContentType: "media", ContentIDs: []string{testContentID}})
	w := serve(http.MethodPost, batchPath, handler.HandleBatchStates, req, "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBatchStatesHandler_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input BatchStatesInput
	}{
		{"missing content type", BatchStatesInput{ContentIDs: []string{testContentID}}},
		{"empty ids", BatchStatesInput{ContentType: "media", ContentIDs: []string{}}},
		{"over batch cap", BatchStatesInput{ContentType: "media", ContentIDs: make([]string, 101)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			handler := NewBatchStatesHandler(svc)

			req := batchRequest(t, tc.input)
			w := serve(http.MethodPost, batchPath, handler.HandleBatchStates, req, testActor)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "GetStates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBatchStatesHandler_UnsupportedType(t *testing.T) {
	svc := new(mockService)
	handler := NewBatchStatesHandler(svc)

	svc.On("GetStates", mock.Anything, testActor, content.Type("playlist"), []string{testContentID}).
		Return(nil, content.ErrUnsupportedType)

	req := batchRequest(t, BatchStatesInput{ContentType: "playlist", ContentIDs: []string{testContentID}})
	w := serve(http.MethodPost, batchPath, handler.HandleBatchStates, req, testActor)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
