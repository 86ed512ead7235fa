package args

import (
	"testing"
)

// TestRegistryHasMarker tests marker recognition
func TestRegistryHasMarker(t *testing.T) {
	r := NewRegistry()
	for _, m := range Markers {
		if !r.HasMarker(string(m)) {
			t.Errorf("Expected marker %q to be known", m)
		}
	}
	for _, bad := range []string{"~", "###", "[#]", " *", "**"} {
		if r.HasMarker(bad) {
			t.Errorf("Expected marker %q to be unknown", bad)
		}
	}
}

// TestRegistryMultiton tests one instance per identifier
func TestRegistryMultiton(t *testing.T) {
	r := NewRegistry()

	first, err := r.Marshaler(MarkerString, 'x')
	if err != nil {
		t.Fatalf("Marshaler failed: %v", err)
	}
	second, err := r.Marshaler(MarkerString, 'x')
	if err != nil {
		t.Fatalf("Marshaler failed: %v", err)
	}
	if first != second {
		t.Error("Expected the same instance for repeated requests")
	}

	other, _ := r.Marshaler(MarkerString, 'y')
	if other == first {
		t.Error("Expected distinct instances for distinct identifiers")
	}
	if r.Len() != 2 {
		t.Errorf("Expected 2 instances, got %d", r.Len())
	}
}

// TestRegistryKeyedByIdentifier tests that a cached instance is returned whatever the marker
func TestRegistryKeyedByIdentifier(t *testing.T) {
	r := NewRegistry()
	first, _ := r.Marshaler(MarkerInt, 'x')
	again, err := r.Marshaler(MarkerBool, 'x')
	if err != nil {
		t.Fatalf("Marshaler failed: %v", err)
	}
	if again != first || again.Marker() != MarkerInt {
		t.Errorf("Expected cached integer marshaler, got %q", again.Marker())
	}
}

// TestRegistryUnknownMarker tests the construction guard
func TestRegistryUnknownMarker(t *testing.T) {
	r := NewRegistry()
	_, err := r.Marshaler(Marker("~"), 'f')
	pe := expectParseError(t, err, ErrorTypeInvalidTypeMarker, 'f')
	if pe.Parameter != "~" {
		t.Errorf("Expected parameter '~', got %q", pe.Parameter)
	}
	if r.Len() != 0 {
		t.Errorf("Expected nothing cached, got %d", r.Len())
	}
}

// TestRegistryReset tests that reset drops every instance
func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	m, _ := r.Marshaler(MarkerBool, 'x')
	_ = m.Set("", false)
	r.reset()
	if r.Len() != 0 {
		t.Fatalf("Expected empty registry, got %d", r.Len())
	}
	fresh, _ := r.Marshaler(MarkerBool, 'x')
	if fresh.Value() != false {
		t.Errorf("Expected fresh default, got %v", fresh.Value())
	}
}
