package estimate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/supportops/triage/internal/common"
	"github.com/supportops/triage/internal/ticket"
)

func TestLoadRulesOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := []byte("customer:\n  vip_customers:\n    - globex\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("LoadRules() error: %v", err)
	}

	// The named table is replaced wholesale.
	if len(rules.Customer.VIPCustomers) != 1 || rules.Customer.VIPCustomers[0] != "globex" {
		t.Errorf("VIPCustomers = %v, want [globex]", rules.Customer.VIPCustomers)
	}
	// Untouched tables keep their defaults.
	if len(rules.SLA.BreachKeywords) == 0 {
		t.Error("SLA breach keywords lost during overlay")
	}
	if rules.RCA.MinLength != 50 {
		t.Errorf("RCA.MinLength = %d, want 50", rules.RCA.MinLength)
	}

	e := New(rules)
	got := e.CustomerARR(ticket.Fields{CustomerName: "Globex"})
	if got.Score != 15 {
		t.Errorf("CustomerARR() with custom VIP list = %d, want 15", got.Score)
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadRules() expected error for missing file, got nil")
	}
}

func TestLoadRulesRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("customer: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing rules file: %v", err)
	}
	_, err := LoadRules(path)
	if err == nil {
		t.Fatal("LoadRules() expected error for malformed YAML, got nil")
	}
	if !errors.Is(err, common.ErrInvalidConfig) {
		t.Errorf("LoadRules() error = %v, want ErrInvalidConfig", err)
	}
}
