package upload

import (
	"fmt"
	"sort"
	"strings"
)

const mib = 1024 * 1024

// Policy is the immutable accept/reject configuration for uploads. It is
// built once at startup and shared read-only across requests.
type Policy struct {
	// AllowedTypes maps a lowercase file extension to the MIME types
	// accepted for it.
	AllowedTypes map[string][]string
	MaxFileSize  int64
}

// DefaultPolicy returns the stock whitelist and the 50MB size limit.
func DefaultPolicy() Policy {
	return Policy{
		MaxFileSize: 50 * mib,
		AllowedTypes: map[string][]string{
			"pdf":  {"application/pdf"},
			"doc":  {"application/msword"},
			"docx": {"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
			"xls":  {"application/vnd.ms-excel"},
			"xlsx": {"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
			"jpg":  {"image/jpeg"},
			"jpeg": {"image/jpeg"},
			"png":  {"image/png"},
			"gif":  {"image/gif"},
			"bmp":  {"image/bmp"},
			"webp": {"image/webp"},
			"svg":  {"image/svg+xml"},
			"tiff": {"image/tiff"},
			"tif":  {"image/tiff"},
			"html": {"text/html"},
			"htm":  {"text/html"},
			"csv":  {"text/csv", "application/csv"},
			"json": {"application/json", "text/json"},
			"xml":  {"application/xml", "text/xml"},
		},
	}
}

// VerdictKind tags the outcome of a validation pass.
type VerdictKind int

const (
	// VerdictAccepted means the descriptor passed every check.
	VerdictAccepted VerdictKind = iota
	// VerdictRejected means a check failed; Reason explains which.
	VerdictRejected
	// VerdictErrored means the descriptor could not be inspected. It is
	// still a refusal, not a fault: validation never raises.
	VerdictErrored
)

// Verdict is the tagged result of Policy.Validate.
type Verdict struct {
	Kind   VerdictKind
	Reason string
}

// Accepted reports whether the descriptor may proceed to storage.
func (v Verdict) Accepted() bool {
	return v.Kind == VerdictAccepted
}

func rejected(reason string) Verdict {
	return Verdict{Kind: VerdictRejected, Reason: reason}
}

func errored(cause string) Verdict {
	return Verdict{Kind: VerdictErrored, Reason: fmt.Sprintf("File validation error: %s", cause)}
}

// Validate runs every check in order and short-circuits on the first failure.
// It is pure: no I/O, no panics, always a verdict.
func (p Policy) Validate(fd FileDescriptor) Verdict {
	if fd.Filename == "" {
		return rejected("No file provided")
	}

	ext := fileExtension(fd.Filename)
	if ext == "" {
		return rejected(fmt.Sprintf("File '%s' has no extension", fd.Filename))
	}

	mimeTypes, ok := p.AllowedTypes[ext]
	if !ok {
		return rejected(fmt.Sprintf("File type '.%s' is not allowed. Allowed types: %v", ext, p.AllowedExtensions()))
	}

	if fd.Size < 0 {
		return errored("file size could not be determined")
	}
	if fd.Size > p.MaxFileSize {
		return rejected(fmt.Sprintf("File size %.2fMB exceeds maximum allowed size of %.1fMB",
			float64(fd.Size)/mib, float64(p.MaxFileSize)/mib))
	}

	// Absent content type is accepted as-is; the cross-check only runs
	// against a declared value.
	if fd.ContentType != "" && !contains(mimeTypes, fd.ContentType) {
		return rejected(fmt.Sprintf("Content type '%s' does not match file extension '.%s'", fd.ContentType, ext))
	}

	return Verdict{Kind: VerdictAccepted}
}

// AllowedExtensions returns the whitelisted extensions in sorted order.
func (p Policy) AllowedExtensions() []string {
	exts := make([]string, 0, len(p.AllowedTypes))
	for ext := range p.AllowedTypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// fileExtension extracts the lowercase substring after the last dot, or ""
// when the filename has no usable extension.
func fileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
