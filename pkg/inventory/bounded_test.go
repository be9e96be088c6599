package inventory

import (
	"errors"
	"fmt"
	"testing"
)

func TestBounded_AddWithinCapacity(t *testing.T) {
	b := NewBounded[token](2)
	if err := b.Add(token{name: "rope", value: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := b.Add(token{name: "torch", value: 2}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Expected 2 items, got %d", b.Len())
	}
}

func TestBounded_AddBeyondCapacity(t *testing.T) {
	const limit = 3
	b := NewBounded[token](limit)
	for i := 0; i < limit; i++ {
		if err := b.Add(token{name: fmt.Sprintf("item%d", i), value: i}); err != nil {
			t.Fatalf("Add %d returned error: %v", i, err)
		}
	}

	err := b.Add(token{name: "overflow", value: 99})
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
	}
	if b.Len() != limit {
		t.Errorf("Expected %d items after failed add, got %d", limit, b.Len())
	}
	if b.Contains("overflow") {
		t.Error("Expected overflow item to be absent")
	}
}

func TestBounded_OverwriteAtCapacity(t *testing.T) {
	b := NewBounded[token](1)
	if err := b.Add(token{name: "rope", value: 1}); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	// Replacing an existing name does not consume a slot.
	if err := b.Add(token{name: "rope", value: 5}); err != nil {
		t.Fatalf("Expected overwrite at capacity to succeed, got %v", err)
	}
	got, err := b.Get("rope")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.value != 5 {
		t.Errorf("Expected value 5, got %d", got.value)
	}
}

func TestBounded_Show(t *testing.T) {
	b := NewBounded[token](5)
	_ = b.Add(token{name: "torch", value: 2})
	_ = b.Add(token{name: "rope", value: 1})

	got := b.Show()
	want := []string{"rope:1", "torch:2"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Show()[%d] = %q, want %q", i, got[i], w)
		}
	}
}
