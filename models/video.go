package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// NoCodec is the extractor's sentinel for "this stream has no
// video (or audio) track".
const NoCodec = "none"

// FlexFloat decodes a JSON number or a numeric string. yt-dlp emits
// the quality hint either way depending on extractor.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// non-numeric quality labels are ignored
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = FlexFloat(v)
	return nil
}

// Format is one candidate encoding of a video as reported by yt-dlp
// (--dump-single-json). Zero values mean the field was absent.
type Format struct {
	FormatID   string    `json:"format_id"`
	FormatNote string    `json:"format_note"`
	Ext        string    `json:"ext"`
	Quality    FlexFloat `json:"quality"`
	Filesize   int64     `json:"filesize"`
	Height     int       `json:"height"`
	Resolution string    `json:"resolution"`
	FPS        float64   `json:"fps"`
	VCodec     string    `json:"vcodec"`
	ACodec     string    `json:"acodec"`
	// URL may be absent here and inherited from the top-level record.
	URL string `json:"url"`
}

// HasVideo reports whether the format carries a video track. Only the
// literal sentinel counts as "no video"; an absent vcodec does not.
func (f Format) HasVideo() bool {
	return f.VCodec != NoCodec
}

// RawVideoInfo is the top-level record produced by yt-dlp.
type RawVideoInfo struct {
	Title       string   `json:"title"`
	Duration    float64  `json:"duration"`
	Thumbnail   string   `json:"thumbnail"`
	Uploader    string   `json:"uploader"`
	Channel     string   `json:"channel"`
	ViewCount   *int64   `json:"view_count"`
	LikeCount   *int64   `json:"like_count"`
	Description string   `json:"description"`
	Filesize    int64    `json:"filesize"`
	// URL is the fallback direct link when no format array is present.
	URL     string   `json:"url"`
	Formats []Format `json:"formats"`
}

// BestUploader prefers the uploader name, falling back to the channel.
func (r RawVideoInfo) BestUploader() string {
	if r.Uploader != "" {
		return r.Uploader
	}
	return r.Channel
}
