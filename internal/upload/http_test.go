package upload

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUploadRouter(store *fakeStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, NewService(DefaultPolicy(), store, zap.NewNop()))
	return router
}

func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadEndpointSuccess(t *testing.T) {
	store := &fakeStore{}
	router := newUploadRouter(store)

	body, contentType := multipartBody(t, "test.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Success     bool   `json:"success"`
		URL         string `json:"url"`
		Filename    string `json:"filename"`
		Size        int64  `json:"size"`
		ContentType string `json:"content_type"`
		Timestamp   string `json:"upload_timestamp"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "test.pdf", resp.Filename)
	assert.Equal(t, int64(8), resp.Size)
	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Contains(t, resp.URL, "/sapience-dev/uploads/")
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, 1, store.calls)
}

func TestUploadEndpointValidationRejection(t *testing.T) {
	store := &fakeStore{}
	router := newUploadRouter(store)

	body, contentType := multipartBody(t, "test.txt", "text/plain", []byte("hello"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnsupportedMediaType, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["detail"], "File type '.txt' is not allowed")
	assert.Equal(t, 0, store.calls, "storage gateway must not be invoked on rejection")
}

func TestUploadEndpointStorageFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("MinIO connection failed")}
	router := newUploadRouter(store)

	body, contentType := multipartBody(t, "test.pdf", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["detail"], "Upload failed: ")
	assert.Contains(t, resp["detail"], "MinIO connection failed")
	assert.Equal(t, 1, store.calls)
}

func TestUploadEndpointMissingFile(t *testing.T) {
	store := &fakeStore{}
	router := newUploadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, store.calls)
}

func TestUploadEndpointEmptyFilename(t *testing.T) {
	store := &fakeStore{}
	router := newUploadRouter(store)

	body, contentType := multipartBody(t, "", "application/pdf", []byte("%PDF"))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, 0, store.calls)
}

func TestUploadEndpointAcceptsMissingContentType(t *testing.T) {
	store := &fakeStore{}
	router := newUploadRouter(store)

	body, contentType := multipartBody(t, "notes.json", "", []byte(`{"a":1}`))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, 1, store.calls)
}
