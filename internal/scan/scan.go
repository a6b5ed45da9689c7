package scan

import "github.com/tabscan/tabscan/internal/models"

// NewScanResult parses a raw text block into a ScanResult carrying its
// provenance. The result is transient; persistence is the caller's business.
func NewScanResult(kind models.SourceKind, sourceID, text string) models.ScanResult {
	return models.ScanResult{
		SourceKind:   kind,
		SourceID:     sourceID,
		Items:        ParseLines(text),
		OriginalText: text,
	}
}
