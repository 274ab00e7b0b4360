package uploader

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifrashafqat/job-portal/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	c := New("test-key", 5*time.Second)
	c.Endpoint = srv.URL
	return c, &calls
}

func TestUploadSuccess(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4e, 0x47}
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.PostForm.Get("key"))
		assert.Equal(t, base64.StdEncoding.EncodeToString(data), r.PostForm.Get("image"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/abc123/doc.png"}}`))
	})

	url, err := c.Upload(context.Background(), data, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc123/doc.png", url)
	assert.Equal(t, int64(1), calls.Load())
}

func TestUploadRejectsNonImageBeforeAnyNetworkCall(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("host must not be called for non-image input")
	})

	_, err := c.Upload(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.KindUpload, appErr.Kind)
	assert.Equal(t, int64(0), calls.Load())
}

func TestUploadMissingAPIKeyIsConfigError(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("host must not be called without a credential")
	})
	c.APIKey = ""

	_, err := c.Upload(context.Background(), []byte{1}, "image/jpeg")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.KindConfig, appErr.Kind)
	assert.Equal(t, int64(0), calls.Load())
}

func TestUploadHostErrorSurfacesHostMessage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"status":400,"error":{"message":"Invalid API v1 key"}}`))
	})

	url, err := c.Upload(context.Background(), []byte{1}, "image/png")
	require.Error(t, err)
	assert.Empty(t, url, "no URL may be fabricated on failure")

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.KindUpload, appErr.Kind)
	assert.Equal(t, "Invalid API v1 key", appErr.Message)
}

func TestUploadUnreachableHost(t *testing.T) {
	c := New("test-key", time.Second)
	c.Endpoint = "http://127.0.0.1:1/upload"

	_, err := c.Upload(context.Background(), []byte{1}, "image/png")
	require.Error(t, err)

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.KindUpload, appErr.Kind)
}
