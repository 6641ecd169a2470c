package service

import (
	"sort"
	"strings"

	"github.com/cakirmemati3-ui/video-backend/models"
)

// SelectBestFormat picks the primary format from a non-empty list.
// Callers with an empty list fall back to the record's top-level URL
// and must not call this.
//
// TikTok gets a first pass that prefers the watermark-free variant.
// The note check ("download" present, or "watermark" absent) is a
// best-effort textual heuristic inherited from upstream behavior; it
// accepts most video formats whenever the note lacks the literal word
// "watermark" and is not a watermark-free guarantee.
func SelectBestFormat(formats []models.Format, platform Platform) models.Format {
	if platform == PlatformTiktok {
		for _, f := range formats {
			note := strings.ToLower(f.FormatNote)
			if strings.Contains(note, "download") || !strings.Contains(note, "watermark") {
				if f.HasVideo() {
					return f
				}
			}
		}
	}

	video := make([]models.Format, 0, len(formats))
	for _, f := range formats {
		if f.HasVideo() {
			video = append(video, f)
		}
	}
	if len(video) == 0 {
		// audio-only last resort
		return formats[0]
	}
	// tallest resolution wins, filesize breaks ties; equal pairs keep
	// their input order
	sort.SliceStable(video, func(i, j int) bool {
		if video[i].Height != video[j].Height {
			return video[i].Height > video[j].Height
		}
		return video[i].Filesize > video[j].Filesize
	})
	return video[0]
}
