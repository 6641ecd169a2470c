package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind names a user-facing failure category.
type ErrorKind string

const (
	KindUnsupportedPlatform ErrorKind = "unsupported_platform"
	KindVideoUnavailable    ErrorKind = "video_unavailable"
	KindDownloadFailed      ErrorKind = "download_failed"
	KindTimeout             ErrorKind = "timeout"
	KindFileTooLarge        ErrorKind = "file_too_large"
	KindMissingDirectURL    ErrorKind = "missing_direct_url"
)

// Error is a recognized, user-facing failure. Anything else leaving
// the service layer is surfaced as an opaque 500 at the boundary.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Detail  string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// AsError unwraps a service Error from err, if there is one.
func AsError(err error) (*Error, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func ErrUnsupportedPlatform(url string) *Error {
	return &Error{
		Kind:    KindUnsupportedPlatform,
		Status:  http.StatusBadRequest,
		Message: "Unsupported URL. Only Instagram, TikTok and YouTube links are accepted.",
		Detail:  url,
	}
}

func ErrVideoUnavailable(detail string) *Error {
	if detail == "" {
		detail = "Video not found or account is private."
	}
	return &Error{
		Kind:    KindVideoUnavailable,
		Status:  http.StatusNotFound,
		Message: "Video unavailable.",
		Detail:  detail,
	}
}

func ErrDownloadFailed(detail string) *Error {
	return &Error{
		Kind:    KindDownloadFailed,
		Status:  http.StatusInternalServerError,
		Message: "Extraction failed. The link is valid but the upstream fetch did not succeed.",
		Detail:  detail,
	}
}

func ErrTimeout() *Error {
	return &Error{
		Kind:    KindTimeout,
		Status:  http.StatusRequestTimeout,
		Message: "Extraction took too long. Try a shorter video or retry later.",
	}
}

func ErrFileTooLarge(sizeMB, maxMB int) *Error {
	return &Error{
		Kind:    KindFileTooLarge,
		Status:  http.StatusRequestEntityTooLarge,
		Message: fmt.Sprintf("Video is too large (%dMB). Maximum allowed is %dMB.", sizeMB, maxMB),
	}
}

// ErrMissingDirectURL covers the extractor returning a record with no
// usable URL at all. Treated as a download failure outward.
func ErrMissingDirectURL() *Error {
	return &Error{
		Kind:    KindMissingDirectURL,
		Status:  http.StatusInternalServerError,
		Message: "Extraction failed. The link is valid but the upstream fetch did not succeed.",
		Detail:  "extractor returned no direct media URL",
	}
}
