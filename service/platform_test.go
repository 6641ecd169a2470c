package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPlatform(t *testing.T) {
	cases := []struct {
		url  string
		want Platform
	}{
		{"https://www.instagram.com/reel/Cabc123/", PlatformInstagram},
		{"https://instagr.am/p/Cabc123/", PlatformInstagram},
		{"https://www.tiktok.com/@user/video/123456", PlatformTiktok},
		{"https://vm.tiktok.com/ZM123/", PlatformTiktok},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYoutube},
		{"https://youtu.be/dQw4w9WgXcQ", PlatformYoutube},
		{"HTTPS://WWW.TIKTOK.COM/@USER/VIDEO/1", PlatformTiktok},
		{"https://YouTu.Be/abc", PlatformYoutube},
	}
	for _, tc := range cases {
		got, err := DetectPlatform(tc.url)
		require.NoError(t, err, tc.url)
		assert.Equal(t, tc.want, got, tc.url)
	}
}

func TestDetectPlatformUnsupported(t *testing.T) {
	for _, url := range []string{
		"https://vimeo.com/12345",
		"https://example.com/watch?v=1",
		"not a url at all",
		"",
	} {
		_, err := DetectPlatform(url)
		se, ok := AsError(err)
		require.True(t, ok, url)
		assert.Equal(t, KindUnsupportedPlatform, se.Kind)
		assert.Equal(t, 400, se.Status)
	}
}

func TestPlatformLabel(t *testing.T) {
	// naive capitalize-first, so "Tiktok" rather than "TikTok"
	assert.Equal(t, "Tiktok", PlatformTiktok.Label())
	assert.Equal(t, "Instagram", PlatformInstagram.Label())
	assert.Equal(t, "Youtube", PlatformYoutube.Label())
}

func TestOptionsFor(t *testing.T) {
	tk := OptionsFor(PlatformTiktok)
	assert.Equal(t, "best[ext=mp4][vcodec^=avc1]/best[ext=mp4]/best", tk.FormatExpr)
	assert.Contains(t, tk.Headers["User-Agent"], "Chrome")
	assert.True(t, tk.NoPlaylist)

	ig := OptionsFor(PlatformInstagram)
	assert.Equal(t, "best[ext=mp4]/best", ig.FormatExpr)
	assert.Contains(t, ig.Headers["User-Agent"], "iPhone")

	yt := OptionsFor(PlatformYoutube)
	assert.Equal(t, "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best", yt.FormatExpr)
	assert.Equal(t, "mp4", yt.MergeFormat)
	assert.Empty(t, yt.Headers)

	// defensive default for an unknown tag
	other := OptionsFor(Platform("vimeo"))
	assert.Equal(t, "best", other.FormatExpr)
}
