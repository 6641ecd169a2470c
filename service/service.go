package service

import (
	"context"
	"time"

	"github.com/cakirmemati3-ui/video-backend/log"
	"github.com/cakirmemati3-ui/video-backend/models"
)

// Fetcher resolves a share link into normalized video info. It holds
// only static configuration; every call operates on request-scoped
// data, so concurrent use needs no locking.
type Fetcher struct {
	extractor Extractor
	maxSizeMB int
	timeout   time.Duration
}

func NewFetcher(extractor Extractor, maxSizeMB int, timeout time.Duration) *Fetcher {
	return &Fetcher{
		extractor: extractor,
		maxSizeMB: maxSizeMB,
		timeout:   timeout,
	}
}

// FetchVideoInfo runs the whole pipeline: classify the URL, extract
// under a deadline, pick the primary format, project metadata and
// enforce the size ceiling.
func (f *Fetcher) FetchVideoInfo(ctx context.Context, url string) (*models.VideoInfo, error) {
	platform, err := DetectPlatform(url)
	if err != nil {
		return nil, err
	}
	log.Info("platform detected: %s for URL: %s", platform, url)

	opts := OptionsFor(platform)

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	raw, err := f.extractor.Extract(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrVideoUnavailable("")
	}

	var chosen models.Format
	if len(raw.Formats) > 0 {
		chosen = SelectBestFormat(raw.Formats, platform)
	}

	info, err := ProjectVideoInfo(raw, chosen, platform)
	if err != nil {
		return nil, err
	}

	if err = CheckSizeLimit(info, f.maxSizeMB); err != nil {
		return nil, err
	}

	log.Info("successfully extracted info for: %s", info.Title)
	return info, nil
}
