package models

// Tab is a persisted bill: a set of items split among named participants.
type Tab struct {
	// ID is the unique identifier for the tab (UUID format).
	ID string `json:"id"`

	// Title is the human-readable name for the tab.
	// Auto-generated from participants when not provided.
	Title string `json:"title"`

	// Participants is the list of people splitting the tab.
	Participants []string `json:"participants"`

	// Items are the line items on the tab, usually taken from a ScanResult.
	Items []TabItem `json:"items"`

	// CreatedBy is the user ID that created the tab.
	CreatedBy string `json:"createdBy,omitempty"`

	// CreatedAt is the Unix timestamp when the tab was created.
	CreatedAt int64 `json:"createdAt"`
}

// TabItem is a line item on a tab. Unlike ParsedItem it may carry an
// assignment: the one participant the item is attributed to. Unassigned
// items contribute nothing to per-person balances.
type TabItem struct {
	// ID is the unique identifier for the item (UUID format).
	ID string `json:"id"`

	// Name is the item description.
	Name string `json:"name"`

	// Price is the per-unit price.
	Price float64 `json:"price"`

	// Quantity is the unit count, at least 1.
	Quantity int `json:"quantity"`

	// AssignedTo is the participant this item is attributed to, or empty
	// when unassigned.
	AssignedTo string `json:"assignedTo,omitempty"`
}

// Amount returns the quantity-weighted price of the item.
func (i TabItem) Amount() float64 {
	if i.Quantity <= 0 {
		return i.Price
	}
	return i.Price * float64(i.Quantity)
}

// Total returns the quantity-weighted sum of all item amounts on the tab.
func (t Tab) Total() float64 {
	var total float64
	for _, item := range t.Items {
		total += item.Amount()
	}
	return total
}
