package models

// SourceKind identifies where a scan's raw text came from.
type SourceKind string

const (
	// SourceBarcode marks text decoded from a barcode or QR payload.
	SourceBarcode SourceKind = "barcode"

	// SourceOCR marks text recognized from a photographed receipt.
	SourceOCR SourceKind = "ocr"
)

// ParsedItem is a single purchasable line extracted from a receipt.
// Instances are created only by the parser and are immutable once produced.
type ParsedItem struct {
	// Name is the item description, trimmed and never empty.
	Name string `json:"name"`

	// Price is the per-unit price. Always positive.
	Price float64 `json:"price"`

	// Quantity is the unit count. The line parser always emits 1; callers
	// may raise it when assigning items.
	Quantity int `json:"quantity"`
}

// Amount returns the quantity-weighted price of the item.
func (i ParsedItem) Amount() float64 {
	return i.Price * float64(i.Quantity)
}

// ScanResult packages the output of one scan/OCR pass.
type ScanResult struct {
	// ID is the unique identifier for the scan (UUID format).
	// Empty until the scan is persisted.
	ID string `json:"id,omitempty"`

	// SourceKind records whether the text came from a barcode payload or OCR.
	SourceKind SourceKind `json:"sourceKind"`

	// SourceID identifies the acquisition source (e.g. a barcode value or an
	// image reference supplied by the caller).
	SourceID string `json:"sourceId"`

	// Items are the parsed line items, in the order their lines appeared in
	// OriginalText.
	Items []ParsedItem `json:"items"`

	// OriginalText is the raw recognized-text block the items were parsed from.
	OriginalText string `json:"originalText"`

	// CreatedAt is the Unix timestamp when the scan was persisted.
	// Zero for transient results.
	CreatedAt int64 `json:"createdAt,omitempty"`
}

// Total returns the quantity-weighted sum of all item prices.
// It is derived, never stored.
func (s ScanResult) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Amount()
	}
	return total
}
