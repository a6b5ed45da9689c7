package models

// Person is one participant's computed share of a split.
type Person struct {
	// Name is the participant's trimmed, non-empty name.
	Name string `json:"name"`

	// AmountOwed is this person's share of the total. Never negative.
	AmountOwed float64 `json:"amountOwed"`
}

// Transfer is a single settlement payment: From pays To the given amount.
// Applying every transfer in a settlement plan drives each participant's
// deviation from the fair share to within a cent of zero.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}
