package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cakirmemati3-ui/video-backend/models"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds float64
		want    string
	}{
		{125, "2:05"},
		{45, "0:45"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{59.9, "0:59"}, // sub-second remainder dropped
		{0, ""},
		{-3, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDuration(tc.seconds), "%v seconds", tc.seconds)
	}
}

func TestProjectVideoInfoBasics(t *testing.T) {
	raw := &models.RawVideoInfo{
		Title:     "clip",
		Duration:  125,
		Thumbnail: "https://cdn/thumb.jpg",
		Uploader:  "someone",
	}
	chosen := models.Format{
		URL:      "https://cdn/video.mp4",
		Ext:      "mp4",
		Height:   1080,
		Filesize: 5242880,
		VCodec:   "avc1",
	}
	info, err := ProjectVideoInfo(raw, chosen, PlatformYoutube)
	require.NoError(t, err)

	assert.True(t, info.Success)
	assert.Equal(t, "clip", info.Title)
	assert.Equal(t, "2:05", info.DurationString)
	assert.Equal(t, "https://cdn/video.mp4", info.DirectURL)
	assert.Equal(t, "Youtube", info.Platform)
	require.NotNil(t, info.FilesizeMB)
	assert.Equal(t, 5.0, *info.FilesizeMB)
	assert.Equal(t, "1080p", info.Resolution)
	assert.Equal(t, "mp4", info.Ext)
}

func TestProjectVideoInfoMissingDirectURL(t *testing.T) {
	raw := &models.RawVideoInfo{Title: "clip"}
	_, err := ProjectVideoInfo(raw, models.Format{}, PlatformInstagram)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindMissingDirectURL, se.Kind)
	assert.Equal(t, 500, se.Status)
}

func TestProjectVideoInfoTopLevelURLFallback(t *testing.T) {
	raw := &models.RawVideoInfo{Title: "clip", URL: "https://cdn/fallback.mp4"}
	info, err := ProjectVideoInfo(raw, models.Format{}, PlatformInstagram)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/fallback.mp4", info.DirectURL)
	// chosen carried no size/resolution information at all
	assert.Nil(t, info.FilesizeMB)
	assert.Equal(t, "unknownp", info.Resolution)
	assert.Equal(t, "mp4", info.Ext)
	assert.Equal(t, "", info.DurationString)
}

func TestProjectVideoInfoDefaults(t *testing.T) {
	raw := &models.RawVideoInfo{URL: "https://cdn/x.mp4", Channel: "chan"}
	info, err := ProjectVideoInfo(raw, models.Format{}, PlatformTiktok)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", info.Title)
	assert.Equal(t, "chan", info.Uploader) // channel fallback
	assert.Equal(t, "Tiktok", info.Platform)
}

func TestProjectVideoInfoDescriptionTruncated(t *testing.T) {
	raw := &models.RawVideoInfo{
		URL:         "https://cdn/x.mp4",
		Description: strings.Repeat("d", 700),
	}
	info, err := ProjectVideoInfo(raw, models.Format{}, PlatformYoutube)
	require.NoError(t, err)
	assert.Len(t, info.Description, 500)
}

func TestProjectVideoInfoAlternatesCappedAtFive(t *testing.T) {
	raw := &models.RawVideoInfo{URL: "https://cdn/x.mp4"}
	for i := 0; i < 20; i++ {
		raw.Formats = append(raw.Formats, models.Format{
			FormatID: "f", VCodec: "avc1", Height: 360 + i,
		})
	}
	// interleave audio-only entries that must be dropped
	raw.Formats = append(raw.Formats, models.Format{FormatID: "aud", VCodec: models.NoCodec})

	info, err := ProjectVideoInfo(raw, raw.Formats[0], PlatformYoutube)
	require.NoError(t, err)
	require.Len(t, info.Formats, 5)
	// original order preserved, no re-sorting
	assert.Equal(t, "360p", info.Formats[0].Resolution)
	assert.Equal(t, "364p", info.Formats[4].Resolution)
}

func TestMegabytesRounding(t *testing.T) {
	mb := megabytes(5242880)
	require.NotNil(t, mb)
	assert.Equal(t, 5.0, *mb)

	mb = megabytes(1234567)
	require.NotNil(t, mb)
	assert.Equal(t, 1.18, *mb)

	assert.Nil(t, megabytes(0))
}

func TestCheckSizeLimit(t *testing.T) {
	over := 501.0
	err := CheckSizeLimit(&models.VideoInfo{FilesizeMB: &over}, 500)
	se, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, KindFileTooLarge, se.Kind)
	assert.Equal(t, 413, se.Status)
	assert.Contains(t, se.Message, "501MB")
	assert.Contains(t, se.Message, "500MB")

	// boundary is inclusive
	exact := 500.0
	assert.NoError(t, CheckSizeLimit(&models.VideoInfo{FilesizeMB: &exact}, 500))

	// unknown size is never rejected
	assert.NoError(t, CheckSizeLimit(&models.VideoInfo{}, 500))
}
