package imports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"resume-builder-backend/internal/analyzer"
	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/parser"
	"resume-builder-backend/internal/resume"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/storage/object"
	"resume-builder-backend/internal/shared/telemetry"
)

const storeNamespace = "imports"

// ErrNoText means extraction succeeded structurally but produced no usable text.
var ErrNoText = errors.New("no text extracted")

// Service contains business logic for resume imports.
type Service struct {
	Store object.ObjectStore
}

// NewService constructs a Service around an object store.
func NewService(store object.ObjectStore) *Service {
	return &Service{Store: store}
}

// Result is the outcome of an import: the reconstructed record plus its
// heuristic analysis, and (for file imports) where the original ended up.
type Result struct {
	Resume      resume.Resume         `json:"parsedResume"`
	Suggestions []analyzer.Suggestion `json:"suggestions"`
	ATSScore    int                   `json:"atsScore"`
	FileName    string                `json:"fileName,omitempty"`
	StorageKey  string                `json:"storageKey,omitempty"`
}

// ImportFile stores an uploaded document, extracts its text, and reconstructs
// and analyzes the resume. The original upload and a derived .extracted.txt
// artifact both remain in the object store.
func (s *Service) ImportFile(ctx context.Context, fileName, mimeType string, r io.Reader) (Result, error) {
	metrics.IncImportStarted()
	start := time.Now()

	key, sizeBytes, detectedMime, err := s.Store.Save(ctx, storeNamespace, fileName, r)
	if err != nil {
		metrics.IncImportFailed()
		return Result{}, fmt.Errorf("import file %s: store: %w", fileName, err)
	}

	if strings.TrimSpace(mimeType) == "" {
		mimeType = detectedMime
	}

	text, err := extract.ExtractText(ctx, s.Store, key, mimeType, fileName)
	if err != nil {
		metrics.IncImportFailed()
		return Result{}, err
	}
	if strings.TrimSpace(text) == "" {
		metrics.IncImportFailed()
		return Result{}, fmt.Errorf("import file %s: %w", fileName, ErrNoText)
	}

	res := buildResult(text)
	res.FileName = fileName
	res.StorageKey = key

	metrics.IncImportCompleted()
	metrics.ObserveImportDurationMs(float64(time.Since(start).Milliseconds()))
	telemetry.Info("imports.file.completed", map[string]any{
		"file_name":   fileName,
		"mime_type":   mimeType,
		"size_bytes":  sizeBytes,
		"storage_key": key,
		"ats_score":   res.ATSScore,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return res, nil
}

// ImportText reconstructs and analyzes a resume from already extracted text.
func (s *Service) ImportText(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return buildResult(text), nil
}

// AnalyzeResume re-scores a caller-supplied record without touching the parser.
func (s *Service) AnalyzeResume(rec resume.Resume) analyzer.Result {
	return analyzer.Analyze(rec)
}

func buildResult(text string) Result {
	rec := parser.Parse(text)
	analysis := analyzer.Analyze(rec)
	return Result{
		Resume:      rec,
		Suggestions: analysis.Suggestions,
		ATSScore:    analysis.ATSScore,
	}
}
