package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/tabscan/tabscan/internal/models"
)

func TestTabServiceCreateAndSplit(t *testing.T) {
	svc := NewTabService(newTestStore(t))
	ctx := context.Background()

	t.Run("assigned items settle through transfers", func(t *testing.T) {
		tab := &models.Tab{
			Participants: []string{"Alice", "Bob"},
			Items: []models.TabItem{
				{Name: "Pizza", Price: 20.0, Quantity: 1, AssignedTo: "Alice"},
				{Name: "Beer", Price: 10.0, Quantity: 1, AssignedTo: "Bob"},
			},
			CreatedBy: "user-1",
		}

		split, err := svc.CreateTab(ctx, tab)
		if err != nil {
			t.Fatalf("CreateTab failed: %v", err)
		}
		if split.EqualShares != nil {
			t.Error("expected no equal-share fallback for assigned items")
		}
		if math.Abs(split.Balances["Alice"]-20.0) > 1e-9 || math.Abs(split.Balances["Bob"]-10.0) > 1e-9 {
			t.Errorf("balances = %v", split.Balances)
		}
		// Alice is 5 above the 15 average, Bob 5 below: one transfer.
		if len(split.Transfers) != 1 {
			t.Fatalf("expected 1 transfer, got %+v", split.Transfers)
		}
		tr := split.Transfers[0]
		if tr.From != "Bob" || tr.To != "Alice" || math.Abs(tr.Amount-5.0) > 0.01 {
			t.Errorf("transfer = %+v, want Bob -> Alice 5.00", tr)
		}
	})

	t.Run("participant without assignments still owes", func(t *testing.T) {
		tab := &models.Tab{
			Participants: []string{"Alice", "Bob", "Charlie"},
			Items: []models.TabItem{
				{Name: "Platter", Price: 30.0, Quantity: 1, AssignedTo: "Alice"},
			},
			CreatedBy: "user-1",
		}

		split, err := svc.CreateTab(ctx, tab)
		if err != nil {
			t.Fatalf("CreateTab failed: %v", err)
		}
		if len(split.Balances) != 3 {
			t.Fatalf("expected all participants in balances, got %v", split.Balances)
		}
		// Average is 10: Bob and Charlie each transfer 10 to Alice.
		if len(split.Transfers) != 2 {
			t.Fatalf("expected 2 transfers, got %+v", split.Transfers)
		}
	})

	t.Run("no assignments falls back to equal split", func(t *testing.T) {
		tab := &models.Tab{
			Participants: []string{"Alice", "Bob"},
			Items: []models.TabItem{
				{Name: "Pizza", Price: 20.0, Quantity: 1},
				{Name: "Beer", Price: 10.0, Quantity: 1},
			},
			CreatedBy: "user-1",
		}

		split, err := svc.CreateTab(ctx, tab)
		if err != nil {
			t.Fatalf("CreateTab failed: %v", err)
		}
		if split.Balances != nil || split.Transfers != nil {
			t.Errorf("expected pure equal split, got %+v", split)
		}
		if len(split.EqualShares) != 2 {
			t.Fatalf("expected 2 shares, got %+v", split.EqualShares)
		}
		for _, p := range split.EqualShares {
			if math.Abs(p.AmountOwed-15.0) > 1e-9 {
				t.Errorf("%s share = %v, want 15.0", p.Name, p.AmountOwed)
			}
		}
	})

	t.Run("degenerate tab yields empty split", func(t *testing.T) {
		tab := &models.Tab{
			Participants: []string{"", "   "},
			CreatedBy:    "user-1",
		}
		split, err := svc.CreateTab(ctx, tab)
		if err != nil {
			t.Fatalf("CreateTab failed: %v", err)
		}
		if len(split.EqualShares) != 0 || len(split.Transfers) != 0 {
			t.Errorf("expected empty split, got %+v", split)
		}
	})

	t.Run("unknown assignee rejected", func(t *testing.T) {
		tab := &models.Tab{
			Participants: []string{"Alice"},
			Items: []models.TabItem{
				{Name: "Pizza", Price: 20.0, Quantity: 1, AssignedTo: "Mallory"},
			},
			CreatedBy: "user-1",
		}
		if _, err := svc.CreateTab(ctx, tab); !errors.Is(err, ErrUnknownAssignee) {
			t.Errorf("expected ErrUnknownAssignee, got %v", err)
		}
	})

	t.Run("GetTab recomputes the same split", func(t *testing.T) {
		tab := &models.Tab{
			Participants: []string{"Alice", "Bob"},
			Items: []models.TabItem{
				{Name: "Pizza", Price: 20.0, Quantity: 1, AssignedTo: "Alice"},
			},
			CreatedBy: "user-1",
		}
		created, err := svc.CreateTab(ctx, tab)
		if err != nil {
			t.Fatalf("CreateTab failed: %v", err)
		}

		_, fetched, err := svc.GetTab(ctx, tab.ID)
		if err != nil {
			t.Fatalf("GetTab failed: %v", err)
		}
		if len(fetched.Transfers) != len(created.Transfers) {
			t.Errorf("split differs on re-read: %+v vs %+v", fetched, created)
		}
	})
}
