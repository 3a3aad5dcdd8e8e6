package docx

import "testing"

func TestIDAllocatorSequence(t *testing.T) {
	var a idAllocator
	for want := 0; want < 10; want++ {
		if got := a.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestIDAllocatorsIndependent(t *testing.T) {
	var a, b idAllocator
	a.Next()
	a.Next()
	if got := b.Next(); got != 0 {
		t.Errorf("fresh allocator Next() = %d, want 0", got)
	}
}

func TestRefID(t *testing.T) {
	if got := refID(0); got != "rId0" {
		t.Errorf("refID(0) = %q, want %q", got, "rId0")
	}
	if got := refID(42); got != "rId42" {
		t.Errorf("refID(42) = %q, want %q", got, "rId42")
	}
}
