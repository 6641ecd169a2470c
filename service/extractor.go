package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/cakirmemati3-ui/video-backend/log"
	"github.com/cakirmemati3-ui/video-backend/models"
)

// Extractor resolves a platform page into a raw metadata record. The
// production implementation shells out to yt-dlp; tests substitute
// synthetic records.
type Extractor interface {
	Extract(ctx context.Context, url string, opts ExtractorOptions) (*models.RawVideoInfo, error)
}

// YtdlpExtractor invokes the yt-dlp binary with --dump-single-json.
// Network/fragment retries are yt-dlp's own concern (flags below); no
// retry logic lives on the Go side.
type YtdlpExtractor struct {
	Bin string
}

func NewYtdlpExtractor(bin string) *YtdlpExtractor {
	if bin == "" {
		bin = "yt-dlp"
	}
	return &YtdlpExtractor{Bin: bin}
}

func (e *YtdlpExtractor) Extract(ctx context.Context, url string, opts ExtractorOptions) (*models.RawVideoInfo, error) {
	args := buildArgs(url, opts)
	cmd := exec.CommandContext(ctx, e.Bin, args...)
	var out bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() != nil {
			log.Warn("yt-dlp timed out for %s", url)
			return nil, ErrTimeout()
		}
		msg := stderr.String()
		log.Error("yt-dlp failed: %v: %s", err, msg)
		return nil, classifyExtractorError(msg)
	}

	var info models.RawVideoInfo
	if err = json.Unmarshal(out.Bytes(), &info); err != nil {
		log.Error("parse yt-dlp json: %v", err)
		return nil, ErrDownloadFailed(fmt.Sprintf("unreadable extractor output: %v", err))
	}
	log.Info("extracted %q formats=%d duration=%.0fs", info.Title, len(info.Formats), info.Duration)
	return &info, nil
}

func buildArgs(url string, opts ExtractorOptions) []string {
	args := []string{
		"--dump-single-json",
		"--quiet",
		"--no-warnings",
		"--socket-timeout", "30",
		"--retries", "3",
		"--fragment-retries", "3",
		"--skip-unavailable-fragments",
	}
	if opts.NoPlaylist {
		args = append(args, "--no-playlist")
	}
	if opts.FormatExpr != "" {
		args = append(args, "-f", opts.FormatExpr)
	}
	if opts.MergeFormat != "" {
		args = append(args, "--merge-output-format", opts.MergeFormat)
	}
	// stable header order keeps invocations reproducible
	keys := make([]string, 0, len(opts.Headers))
	for k := range opts.Headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--add-header", k+":"+opts.Headers[k])
	}
	return append(args, url)
}

// classifyExtractorError sorts an extractor failure message into the
// outward error taxonomy by substring sniffing, mirroring upstream
// wording ("private", "not available", "copyright").
func classifyExtractorError(msg string) error {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "private") || strings.Contains(lower, "not available"):
		return ErrVideoUnavailable("Video is private or has been removed.")
	case strings.Contains(lower, "copyright"):
		return ErrVideoUnavailable("Video is blocked for copyright reasons.")
	default:
		return ErrDownloadFailed(firstLine(msg))
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

var _ Extractor = (*YtdlpExtractor)(nil)

// ErrExtractorUnavailable reports a missing yt-dlp binary at startup.
var ErrExtractorUnavailable = errors.New("yt-dlp binary not found in PATH")

// CheckExtractor verifies the configured binary can be located.
func CheckExtractor(bin string) error {
	if bin == "" {
		bin = "yt-dlp"
	}
	if _, err := exec.LookPath(bin); err != nil {
		return ErrExtractorUnavailable
	}
	return nil
}
