package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tabscan/tabscan/internal/calculator"
	"github.com/tabscan/tabscan/internal/models"
	"github.com/tabscan/tabscan/internal/storage"
)

// ErrUnknownAssignee is returned when a tab item is assigned to someone who
// is not a participant on the tab.
var ErrUnknownAssignee = errors.New("assignee must be one of the participants")

// TabSplit is the computed split for a tab. Tabs with per-item assignments
// settle through balances and transfers; tabs without assignments fall back
// to an equal split.
type TabSplit struct {
	// Balances maps each participant to the amount attributed to them.
	// Empty when no items are assigned.
	Balances map[string]float64 `json:"balances,omitempty"`

	// Transfers is the ordered settlement plan for the balances.
	Transfers []models.Transfer `json:"transfers,omitempty"`

	// EqualShares is the per-person equal split, used when no items carry
	// assignments.
	EqualShares []models.Person `json:"equalShares,omitempty"`
}

// TabService manages persisted tabs and computes their splits.
type TabService struct {
	store storage.Store
}

// NewTabService creates a TabService with the given storage backend.
func NewTabService(store storage.Store) *TabService {
	return &TabService{store: store}
}

// CreateTab validates and persists a tab, returning it with its computed
// split.
func (s *TabService) CreateTab(ctx context.Context, tab *models.Tab) (*TabSplit, error) {
	tab.Participants = filterNames(tab.Participants)

	for _, item := range tab.Items {
		if item.AssignedTo != "" && !isParticipant(item.AssignedTo, tab.Participants) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAssignee, item.AssignedTo)
		}
	}

	if err := s.store.CreateTab(ctx, tab); err != nil {
		slog.Error("CreateTab failed", "error", err)
		return nil, err
	}

	slog.Info("Tab created",
		"tab_id", tab.ID,
		"participants", len(tab.Participants),
		"items", len(tab.Items),
	)
	return s.splitTab(tab), nil
}

// GetTab retrieves a tab with its computed split.
func (s *TabService) GetTab(ctx context.Context, tabID string) (*models.Tab, *TabSplit, error) {
	tab, err := s.store.GetTab(ctx, tabID)
	if err != nil {
		return nil, nil, err
	}
	return tab, s.splitTab(tab), nil
}

// ListTabs retrieves all tabs created by a user.
func (s *TabService) ListTabs(ctx context.Context, userID string) ([]models.Tab, error) {
	return s.store.ListTabs(ctx, userID)
}

// splitTab computes the split for a tab. Degenerate tabs (no participants,
// zero total) produce an empty split, never an error.
func (s *TabService) splitTab(tab *models.Tab) *TabSplit {
	if hasAssignments(tab.Items) {
		// Every participant enters the balance map: someone with no
		// assigned items still owes their share of the average.
		balances := make(map[string]float64, len(tab.Participants))
		for _, name := range tab.Participants {
			balances[name] = 0
		}
		for person, amount := range calculator.AggregateBalances(tab.Items) {
			balances[person] += amount
		}
		return &TabSplit{
			Balances:  balances,
			Transfers: calculator.SettlementPlan(balances),
		}
	}
	return &TabSplit{
		EqualShares: calculator.EqualSplit(tab.Total(), tab.Participants),
	}
}

func hasAssignments(items []models.TabItem) bool {
	for _, item := range items {
		if item.AssignedTo != "" {
			return true
		}
	}
	return false
}

// filterNames trims names and drops blank ones.
func filterNames(names []string) []string {
	var filtered []string
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// isParticipant checks if the name is in the participants list.
func isParticipant(name string, participants []string) bool {
	for _, p := range participants {
		if p == name {
			return true
		}
	}
	return false
}
