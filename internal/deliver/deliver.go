// Package deliver ships rendered digests: to the output directory and,
// when configured, to a Telegram chat.
package deliver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"newsbrief/internal/metrics"
	"newsbrief/internal/reader"
	"newsbrief/internal/render"
)

// FileWriter saves digests under outputDir/<reader>/<reader>_<date>.{md,html}.
type FileWriter struct {
	outputDir string
}

// NewFileWriter creates a writer rooted at outputDir.
func NewFileWriter(outputDir string) *FileWriter {
	return &FileWriter{outputDir: outputDir}
}

// Write stores the Markdown digest and its HTML rendering, returning the
// Markdown path.
func (w *FileWriter) Write(profile *reader.Profile, markdown string, now time.Time) (string, error) {
	slug := strings.ToLower(strings.ReplaceAll(profile.Name, " ", "_"))
	dir := filepath.Join(w.outputDir, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create digest dir: %w", err)
	}

	base := fmt.Sprintf("%s_%s", slug, now.Format("20060102"))
	mdPath := filepath.Join(dir, base+".md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("write digest: %w", err)
	}

	html := render.HTML(profile.Name+"'s Newsletter", markdown)
	htmlPath := filepath.Join(dir, base+".html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("write html digest: %w", err)
	}

	slog.Info("digest saved", "reader", profile.Name, "path", mdPath)
	metrics.Global.IncrementDeliveriesSent()
	return mdPath, nil
}
