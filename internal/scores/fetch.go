package scores

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
)

// DownloadTimeout bounds a single score-table download.
const DownloadTimeout = 30 * time.Minute

// Resolve returns a local path for src. An existing local path is returned
// as-is; anything else is treated as a URL and downloaded into dir.
func Resolve(ctx context.Context, src, dir string) (string, error) {
	if _, err := os.Stat(src); err == nil {
		return src, nil
	}
	dest := filepath.Join(dir, "ias_score.tsv")
	if err := Download(ctx, src, dest); err != nil {
		return "", err
	}
	return dest, nil
}

// Download streams url to dest, reporting progress by byte count on stderr.
func Download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build score download request: %w", err)
	}
	client := &http.Client{Timeout: DownloadTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("score download request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("score download error %d from %s", resp.StatusCode, url)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create score file: %w", err)
	}
	defer f.Close()

	bar := progressbar.DefaultBytes(resp.ContentLength, "downloading score table")
	if _, err := io.Copy(io.MultiWriter(f, bar), resp.Body); err != nil {
		return fmt.Errorf("write score file: %w", err)
	}
	return nil
}

// Load resolves src to a local file and parses it. dir receives the download
// when src is remote.
func Load(ctx context.Context, src, dir string) (Table, error) {
	path, err := Resolve(ctx, src, dir)
	if err != nil {
		return nil, err
	}
	return ParseFile(path)
}

// EnsureDir creates dir (and parents) if it does not already exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}
