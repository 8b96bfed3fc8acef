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

const viewPath = "/content/{contentType}/{contentId}/view"

func viewRequest(t *testing.T, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/content/media/"+testContentID+"/view", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRecordViewHandler_Success(t *testing.T) {
	svc := new(mockService)
	handler := NewRecordViewHandler(svc)

	svc.On("RecordView", mock.Anything, testActor, interactions.ContentRef{
		Type: content.TypeMedia, ID: testContentID,
	}, interactions.Engagement{DurationMs: 4000, ProgressPct: 30.5}).
		Return(&interactions.ViewResult{ViewCount: 43, HasViewed: true}, nil)

	req := viewRequest(t, RecordViewInput{DurationMs: 4000, ProgressPct: 30.5})
	w := serve(http.MethodPost, viewPath, handler.HandleRecordView, req, testActor)

	require.Equal(t, http.StatusOK, w.Code)

	var resp interactions.ViewResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(43), resp.ViewCount)
	assert.True(t, resp.HasViewed)
}

func TestRecordViewHandler_InvalidBody(t *testing.T) {
	svc := new(mockService)
	handler := NewRecordViewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/content/media/"+testContentID+"/view",
		bytes.NewBufferString("{invalid json"))
	w := serve(http.MethodPost, viewPath, handler.HandleRecordView, req, testActor)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordViewHandler_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input RecordViewInput
	}{
		{"negative duration", RecordViewInput{DurationMs: -1}},
		{"progress over 100", RecordViewInput{ProgressPct: 101}},
		{"negative progress", RecordViewInput{ProgressPct: -0.5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mockService)
			handler := NewRecordViewHandler(svc)

			req := viewRequest(t, tc.input)
			w := serve(http.MethodPost, viewPath, handler.HandleRecordView, req, testActor)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			svc.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecordViewHandler_RequiresAuth(t *testing.T) {
	svc := new(mockService)
	handler := NewRecordViewHandler(svc)

	req := viewRequest(t, RecordViewInput{DurationMs: 4000})
	w := serve(http.MethodPost, viewPath, handler.HandleRecordView, req, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecordShareHandler_Success(t *testing.T) {
	svc := new(mockService)
	handler := NewRecordShareHandler(svc)

	svc.On("RecordShare", mock.Anything, testActor, interactions.ContentRef{
		Type: content.TypePodcast, ID: testContentID,
	}).Return(int64(9), nil)

	req := httptest.NewRequest(http.MethodPost, "/content/podcast/"+testContentID+"/share", nil)
	w := serve(http.MethodPost, "/content/{contentType}/{contentId}/share", handler.HandleRecordShare, req, testActor)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, float64(9), resp["shareCount"])
}
