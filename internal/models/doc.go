// Package models defines the core domain models for tabscan.
//
// # Current Models
//
//   - ParsedItem: a single name/price/quantity line extracted from a receipt
//   - ScanResult: the packaged output of one scan pass (items plus provenance)
//   - Person: one participant's share of a split
//   - Transfer: a single settlement payment between two participants
//   - Tab: a persisted bill with participants and per-item assignments
//   - User: a registered account (authentication only)
//
// Participants on tabs are identified by name strings, not user accounts:
// splitting a receipt with someone should never require them to sign up.
// User accounts exist only so a person can keep their own scan and tab
// history.
//
// # Design Principles
//
//  1. Everything produced by the parsing and settlement code is a transient
//     value: computed per call, never mutated afterwards, never persisted by
//     the computation itself. Persistence is the storage layer's business.
//  2. Relationships use ID strings instead of pointers to avoid circular
//     references.
//  3. JSON tags are the wire format; the HTTP layer encodes these structs
//     directly.
package models
