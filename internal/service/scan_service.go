// Package service orchestrates the pure scan and calculator packages with
// storage and authentication. Services hold no state beyond their injected
// collaborators.
package service

import (
	"context"
	"log/slog"

	"github.com/tabscan/tabscan/internal/models"
	"github.com/tabscan/tabscan/internal/scan"
	"github.com/tabscan/tabscan/internal/storage"
)

// Scan hints returned to the caller. Parsing itself never fails; these flag
// the two conditions worth acting on: implausible source text (wrong image,
// re-acquire) and plausible text that yielded nothing (parsing gap, show the
// raw text instead of an empty list).
const (
	HintRetake     = "retake"
	HintParsingGap = "parsing_gap"
)

// ScanOutcome packages a parse result with the plausibility verdict and an
// actionable hint for the presentation layer.
type ScanOutcome struct {
	Scan      models.ScanResult `json:"scan"`
	Total     float64           `json:"total"`
	Plausible bool              `json:"plausible"`
	Hint      string            `json:"hint,omitempty"`
}

// ScanService turns recognized text blocks into structured scan results.
type ScanService struct {
	store storage.Store
}

// NewScanService creates a ScanService with the given storage backend.
func NewScanService(store storage.Store) *ScanService {
	return &ScanService{store: store}
}

// Scan parses a raw text block. When userID is non-empty the result is
// persisted under that user; anonymous scans stay transient.
func (s *ScanService) Scan(ctx context.Context, userID string, kind models.SourceKind, sourceID, text string) (*ScanOutcome, error) {
	if kind != models.SourceBarcode {
		kind = models.SourceOCR
	}

	result := scan.NewScanResult(kind, sourceID, text)
	outcome := &ScanOutcome{
		Scan:      result,
		Total:     result.Total(),
		Plausible: scan.LooksLikeReceipt(text),
	}
	switch {
	case !outcome.Plausible:
		outcome.Hint = HintRetake
	case len(result.Items) == 0:
		outcome.Hint = HintParsingGap
	}

	if userID != "" {
		if err := s.store.SaveScan(ctx, userID, &outcome.Scan); err != nil {
			slog.Error("Scan persistence failed", "user_id", userID, "error", err)
			return nil, err
		}
	}

	slog.Debug("Scan processed",
		"source_kind", kind,
		"items", len(result.Items),
		"plausible", outcome.Plausible,
		"hint", outcome.Hint,
	)
	return outcome, nil
}

// GetScan retrieves a previously persisted scan.
func (s *ScanService) GetScan(ctx context.Context, scanID string) (*models.ScanResult, error) {
	return s.store.GetScan(ctx, scanID)
}

// ListScans retrieves all scans saved by a user.
func (s *ScanService) ListScans(ctx context.Context, userID string) ([]models.ScanResult, error) {
	return s.store.ListScans(ctx, userID)
}
