package service

import (
	"fmt"
	"math"

	"github.com/cakirmemati3-ui/video-backend/models"
)

const (
	maxDescriptionLen = 500
	maxAltFormats     = 5
)

// ProjectVideoInfo shapes the raw extractor record and the chosen
// format into the normalized response entity. Fails when neither the
// chosen format nor the record carries a direct URL.
func ProjectVideoInfo(raw *models.RawVideoInfo, chosen models.Format, platform Platform) (*models.VideoInfo, error) {
	directURL := chosen.URL
	if directURL == "" {
		directURL = raw.URL
	}
	if directURL == "" {
		return nil, ErrMissingDirectURL()
	}

	title := raw.Title
	if title == "" {
		title = "Unknown"
	}

	filesize := chosen.Filesize
	if filesize == 0 {
		filesize = raw.Filesize
	}

	ext := chosen.Ext
	if ext == "" {
		ext = "mp4"
	}

	description := raw.Description
	if runes := []rune(description); len(runes) > maxDescriptionLen {
		description = string(runes[:maxDescriptionLen])
	}

	info := &models.VideoInfo{
		Success:        true,
		Title:          title,
		Duration:       raw.Duration,
		DurationString: FormatDuration(raw.Duration),
		Thumbnail:      raw.Thumbnail,
		DirectURL:      directURL,
		Platform:       platform.Label(),
		Uploader:       raw.BestUploader(),
		ViewCount:      raw.ViewCount,
		LikeCount:      raw.LikeCount,
		Description:    description,
		FilesizeMB:     megabytes(filesize),
		Resolution:     resolutionLabel(chosen),
		Ext:            ext,
		Formats:        projectFormats(raw.Formats),
	}
	return info, nil
}

// FormatDuration renders seconds as H:MM:SS, dropping the hour part
// when zero and any sub-second remainder. Zero or negative durations
// yield no string.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// megabytes converts a byte count to MB rounded to 2 decimals; nil
// when the size is unknown.
func megabytes(bytes int64) *float64 {
	if bytes <= 0 {
		return nil
	}
	mb := math.Round(float64(bytes)/(1024*1024)*100) / 100
	return &mb
}

func resolutionLabel(f models.Format) string {
	if f.Resolution != "" {
		return f.Resolution
	}
	if f.Height > 0 {
		return fmt.Sprintf("%dp", f.Height)
	}
	return "unknownp"
}

// projectFormats reduces the raw list to client-facing summaries:
// audio-only entries are dropped, input order is kept, at most 5
// entries survive.
func projectFormats(formats []models.Format) []models.FormatSummary {
	out := make([]models.FormatSummary, 0, maxAltFormats)
	for _, f := range formats {
		if !f.HasVideo() {
			continue
		}
		out = append(out, models.FormatSummary{
			FormatID:   f.FormatID,
			FormatNote: f.FormatNote,
			Ext:        f.Ext,
			Quality:    float64(f.Quality),
			Filesize:   f.Filesize,
			FilesizeMB: megabytes(f.Filesize),
			Resolution: resolutionLabel(f),
			FPS:        f.FPS,
			VCodec:     f.VCodec,
			ACodec:     f.ACodec,
		})
		if len(out) == maxAltFormats {
			break
		}
	}
	return out
}

// CheckSizeLimit rejects confirmed oversize files. Unknown size always
// passes; the limit itself is inclusive.
func CheckSizeLimit(info *models.VideoInfo, maxMB int) error {
	if info.FilesizeMB == nil {
		return nil
	}
	if *info.FilesizeMB > float64(maxMB) {
		return ErrFileTooLarge(int(*info.FilesizeMB), maxMB)
	}
	return nil
}
