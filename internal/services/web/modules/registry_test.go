package modules

import "testing"

func TestDefaultPublicModulesHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	got := DefaultPublicModules()
	if len(got) == 0 {
		t.Fatal("expected at least one public module")
	}
	seen := map[string]bool{}
	for _, m := range got {
		if m == nil {
			t.Fatal("registry returned nil module")
		}
		if seen[m.ID()] {
			t.Fatalf("duplicate module id %q", m.ID())
		}
		seen[m.ID()] = true
	}
	if !seen["public"] {
		t.Fatalf("public module missing from %v", seen)
	}
}
