// Package export renders visualization results to files. JSON and HTML
// embed the chart description; PNG, SVG and PDF draw a static rendition;
// CSV flattens the underlying data rows.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"journeymap/application/services"
	apperrors "journeymap/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatCSV  = "csv"
)

var formats = map[string]bool{
	FormatJSON: true,
	FormatHTML: true,
	FormatPNG:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatCSV:  true,
}

// IsFormat reports whether f names a supported export format.
func IsFormat(f string) bool {
	return formats[f]
}

// Exporter writes visualization results to files under a base directory.
type Exporter struct {
	dir    string
	logger *zap.Logger
}

// NewExporter creates an exporter writing into dir. The directory is
// created on first use.
func NewExporter(dir string, logger *zap.Logger) *Exporter {
	return &Exporter{dir: dir, logger: logger}
}

// Export writes result in the given format and returns the file path.
// name becomes the filename stem, typically the visualization type.
func (e *Exporter) Export(ctx context.Context, name, format string, result any) (string, error) {
	if !IsFormat(format) {
		return "", apperrors.NewValidationError(fmt.Sprintf("Unsupported export format: %s", format))
	}
	if err := ctx.Err(); err != nil {
		return "", apperrors.NewExportError("export canceled", err)
	}
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", apperrors.NewExportError("failed to create export directory", err)
	}

	sc, err := buildScene(result)
	if err != nil {
		return "", err
	}

	path := filepath.Join(e.dir, e.filename(name, format))

	switch format {
	case FormatJSON:
		err = writeJSON(path, result)
	case FormatHTML:
		err = writeHTML(path, sc, result)
	case FormatPNG:
		err = writePNG(path, sc)
	case FormatSVG:
		err = writeSVG(path, sc)
	case FormatPDF:
		err = writePDF(path, sc)
	case FormatCSV:
		err = writeCSV(path, sc)
	}
	if err != nil {
		if apperrors.IsAppError(err) {
			return "", err
		}
		return "", apperrors.NewExportError(fmt.Sprintf("failed to export %s as %s", name, format), err)
	}

	e.logger.Info("visualization exported",
		zap.String("name", name),
		zap.String("format", format),
		zap.String("path", path))
	return path, nil
}

func (e *Exporter) filename(name, format string) string {
	stamp := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("%s_%s_%s.%s", name, stamp, uuid.NewString()[:8], format)
}

func writeJSON(path string, result any) error {
	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// buildScene maps a result type onto the drawable scene model.
func buildScene(result any) (*scene, error) {
	switch r := result.(type) {
	case *services.SkillNetworkResult:
		return networkScene(r), nil
	case *services.TimelineResult:
		return timelineScene(r), nil
	case *services.RadarResult:
		return radarScene(r), nil
	case *services.GoalProgressResult:
		return goalScene(r), nil
	case *services.RecommendationsResult:
		return recommendationsScene(r), nil
	default:
		return nil, apperrors.NewExportError(fmt.Sprintf("no renderer for result type %T", result), nil)
	}
}
