package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sapience/api/internal/metrics"
)

// RegisterRoutes mounts the upload endpoint on the router.
func RegisterRoutes(router *gin.Engine, service *Service) {
	handler := &httpHandler{service: service}
	router.POST("/upload", handler.uploadFile)
}

type httpHandler struct {
	service *Service
}

func (h *httpHandler) uploadFile(c *gin.Context) {
	started := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "file field is required"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "file filename is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		metrics.ObserveUpload(metrics.OutcomeFailed, 0, 0)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Upload failed: %v", err)})
		return
	}
	defer file.Close()

	// The whole payload is buffered before the storage call; the policy
	// size limit bounds memory use.
	content, err := io.ReadAll(file)
	if err != nil {
		metrics.ObserveUpload(metrics.OutcomeFailed, 0, 0)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Upload failed: %v", err)})
		return
	}

	fd := FileDescriptor{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        int64(len(content)),
		Content:     content,
	}

	result, err := h.service.Upload(c.Request.Context(), fd)
	if err != nil {
		var rejection *RejectionError
		if errors.As(err, &rejection) {
			metrics.ObserveUpload(metrics.OutcomeRejected, 0, 0)
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"detail": rejection.Reason})
			return
		}
		metrics.ObserveUpload(metrics.OutcomeFailed, 0, 0)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Upload failed: %v", err)})
		return
	}

	metrics.ObserveUpload(metrics.OutcomeAccepted, result.Size, time.Since(started).Seconds())
	c.JSON(http.StatusOK, result)
}
