package rbac_test

import (
	"testing"

	"github.com/clearhire/screening/internal/rbac"
)

func TestChecker_Has(t *testing.T) {
	c := rbac.NewChecker(nil)

	if !c.Has("admin", "settings:write") {
		t.Fatalf("admin wildcard should grant everything")
	}
	if !c.Has("reviewer", "report:export") {
		t.Fatalf("reviewer should export reports")
	}
	if c.Has("reviewer", "settings:write") {
		t.Fatalf("reviewer must not change settings")
	}
	if c.Has("applicant", "applicant:view") {
		t.Fatalf("applicant must not list applicants")
	}
	if c.Has("", "question:view") {
		t.Fatalf("unknown role has no permissions")
	}
}

func TestChecker_PrefixPattern(t *testing.T) {
	c := rbac.NewChecker(map[string][]string{"ops": {"report:*"}})
	if !c.Has("ops", "report:export") {
		t.Fatalf("prefix pattern should match")
	}
	if c.Has("ops", "settings:write") {
		t.Fatalf("prefix pattern must not leak")
	}
}
