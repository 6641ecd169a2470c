package consts

const (
	AppName    = "Video Downloader Pro"
	AppVersion = "1.0.0"
)

// PlatformEntry describes one supported platform for /api/platforms.
type PlatformEntry struct {
	Name      string   `json:"name"`
	Supported bool     `json:"supported"`
	Types     []string `json:"types"`
	Features  []string `json:"features,omitempty"`
}

var SupportedPlatforms = []PlatformEntry{
	{
		Name:      "Instagram",
		Supported: true,
		Types:     []string{"Reels", "Posts", "Stories", "IGTV"},
	},
	{
		Name:      "TikTok",
		Supported: true,
		Types:     []string{"Videos"},
		Features:  []string{"Watermark-free download"},
	},
	{
		Name:      "YouTube",
		Supported: true,
		Types:     []string{"Videos", "Shorts"},
		Features:  []string{"Multiple quality options"},
	},
}
