package mcp

import (
	"log/slog"
	"testing"

	"github.com/1broseidon/winctl/internal/config"
)

func boolPtr(v bool) *bool { return &v }

func TestPolicyFromInputDefaults(t *testing.T) {
	cfg := config.Default()

	policy := policyFromInput(cfg, nil, nil)
	if !policy.RequireVisible || !policy.RequireTitle {
		t.Fatalf("expected configured defaults, got %+v", policy)
	}
}

func TestPolicyFromInputOverrides(t *testing.T) {
	cfg := config.Default()

	policy := policyFromInput(cfg, boolPtr(false), nil)
	if policy.RequireVisible {
		t.Fatalf("require_visible override ignored: %+v", policy)
	}
	if !policy.RequireTitle {
		t.Fatalf("require_title should keep configured default: %+v", policy)
	}

	policy = policyFromInput(cfg, nil, boolPtr(false))
	if !policy.RequireVisible || policy.RequireTitle {
		t.Fatalf("require_title override misapplied: %+v", policy)
	}
}

func TestNewServerRegistersWithoutPanic(t *testing.T) {
	s := NewServer(config.Default(), slog.New(slog.NewTextHandler(testWriter{t}, nil)))
	if s == nil || s.mcpServer == nil {
		t.Fatalf("expected a constructed server")
	}
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
