package auth_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/charvi/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken("heartbeat-cron", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Client != "heartbeat-cron" {
		t.Errorf("expected client heartbeat-cron, got %q", claims.Client)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := auth.GenerateToken("stale-client", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := auth.ValidateToken(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}
