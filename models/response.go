package models

import "time"

// FetchRequest is the POST /api/fetch body.
type FetchRequest struct {
	URL string `json:"url" binding:"required"`
}

// FormatSummary is the reduced format projection returned to clients.
type FormatSummary struct {
	FormatID   string   `json:"format_id"`
	FormatNote string   `json:"format_note,omitempty"`
	Ext        string   `json:"ext"`
	Quality    float64  `json:"quality,omitempty"`
	Filesize   int64    `json:"filesize,omitempty"`
	FilesizeMB *float64 `json:"filesize_mb,omitempty"`
	Resolution string   `json:"resolution,omitempty"`
	FPS        float64  `json:"fps,omitempty"`
	VCodec     string   `json:"vcodec,omitempty"`
	ACodec     string   `json:"acodec,omitempty"`
}

// VideoInfo is the normalized response entity for a successful fetch.
type VideoInfo struct {
	Success        bool            `json:"success"`
	Title          string          `json:"title"`
	Duration       float64         `json:"duration,omitempty"`
	DurationString string          `json:"duration_string,omitempty"`
	Thumbnail      string          `json:"thumbnail,omitempty"`
	DirectURL      string          `json:"direct_url"`
	Platform       string          `json:"platform"`
	Uploader       string          `json:"uploader,omitempty"`
	ViewCount      *int64          `json:"view_count,omitempty"`
	LikeCount      *int64          `json:"like_count,omitempty"`
	Description    string          `json:"description,omitempty"`
	FilesizeMB     *float64        `json:"filesize_mb,omitempty"`
	Resolution     string          `json:"resolution,omitempty"`
	Ext            string          `json:"ext"`
	Formats        []FormatSummary `json:"formats,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse stamps the envelope with the current UTC time.
func NewErrorResponse(errMsg, detail string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     errMsg,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	}
}
