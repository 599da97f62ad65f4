package modules

import "testing"

func TestDefaultModulesHaveUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, m := range DefaultModules() {
		if m == nil {
			t.Fatal("nil module in registry")
		}
		if seen[m.ID()] {
			t.Fatalf("duplicate module id %q", m.ID())
		}
		seen[m.ID()] = true
	}
	if !seen["public"] {
		t.Fatal("expected public module")
	}
}

func TestDefaultModulesMount(t *testing.T) {
	t.Parallel()

	for _, m := range DefaultModules() {
		mount, err := m.Mount(Dependencies{})
		if err != nil {
			t.Fatalf("mount %s: %v", m.ID(), err)
		}
		if mount.Handler == nil || mount.Prefix == "" {
			t.Fatalf("module %s returned incomplete mount %+v", m.ID(), mount)
		}
	}
}
