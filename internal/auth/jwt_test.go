package auth

import (
	"testing"
	"time"

	"github.com/tabscan/tabscan/internal/models"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "alice@example.com" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestJWTManagerRejectsBadTokens(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "user-1", Email: "alice@example.com"}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := manager.Validate("not-a-token"); err == nil {
			t.Error("expected error for garbage token")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		other := NewJWTManager("different-secret", time.Hour)
		if _, err := other.Validate(token); err == nil {
			t.Error("expected error for token signed with another secret")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := NewJWTManager("test-secret", -time.Minute)
		token, err := shortLived.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := shortLived.Validate(token); err == nil {
			t.Error("expected error for expired token")
		}
	})
}
