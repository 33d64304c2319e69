package upload

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// objectStore is the slice of the storage gateway the orchestrator needs.
type objectStore interface {
	UploadFromMemory(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// Service sequences validation, key generation and the storage call for one
// upload request. It holds no per-request state.
type Service struct {
	policy Policy
	store  objectStore
	log    *zap.Logger
	now    func() time.Time
}

// NewService constructs the upload orchestrator.
func NewService(policy Policy, store objectStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		policy: policy,
		store:  store,
		log:    log,
		now:    time.Now,
	}
}

// Upload validates the descriptor and forwards its content to the object
// store. A refused descriptor returns *RejectionError and never reaches the
// store; a storage failure is returned as-is and is terminal — no retries.
func (s *Service) Upload(ctx context.Context, fd FileDescriptor) (Result, error) {
	started := s.now().UTC()

	verdict := s.policy.Validate(fd)
	switch verdict.Kind {
	case VerdictRejected:
		s.log.Warn("file validation failed",
			zap.String("filename", fd.Filename),
			zap.String("reason", verdict.Reason))
		return Result{}, &RejectionError{Reason: verdict.Reason}
	case VerdictErrored:
		s.log.Error("file validation errored",
			zap.String("filename", fd.Filename),
			zap.String("reason", verdict.Reason))
		return Result{}, &RejectionError{Reason: verdict.Reason}
	}

	key := MakeObjectKey(fd.Filename, started)

	url, err := s.store.UploadFromMemory(ctx, fd.Content, key, fd.ContentType)
	if err != nil {
		s.log.Error("object upload failed",
			zap.String("filename", fd.Filename),
			zap.String("key", key),
			zap.Error(err))
		return Result{}, err
	}

	completed := s.now().UTC()
	s.log.Info("file uploaded",
		zap.String("filename", fd.Filename),
		zap.String("key", key),
		zap.Int64("size_bytes", fd.Size),
		zap.Duration("elapsed", completed.Sub(started)))

	return Result{
		Success:     true,
		URL:         url,
		Filename:    fd.Filename,
		Size:        fd.Size,
		ContentType: fd.ContentType,
		UploadedAt:  completed,
		Key:         key,
	}, nil
}
