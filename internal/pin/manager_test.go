package pin

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Paintersrp/home/internal/refs"
)

func assertPinned(t *testing.T, m *PinManager, want ...string) {
	t.Helper()
	got := refs.Strings(m.List())
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected pinned list: got %v, want %v", got, want)
	}
}

func TestPinCapacityScenario(t *testing.T) {
	m := NewPinManager(refs.FromStrings([]string{"A", "B", "C"}), 3)

	err := m.Pin("D")
	if !errors.Is(err, ErrAtCapacity) {
		t.Fatalf("expected ErrAtCapacity, got %v", err)
	}
	assertPinned(t, m, "A", "B", "C")

	if err := m.Unpin("B"); err != nil {
		t.Fatalf("unexpected unpin error: %v", err)
	}
	assertPinned(t, m, "A", "C")

	if err := m.Pin("D"); err != nil {
		t.Fatalf("unexpected pin error: %v", err)
	}
	assertPinned(t, m, "A", "C", "D")
}

func TestPinAlreadyPinned(t *testing.T) {
	m := NewPinManager(refs.FromStrings([]string{"A"}), 3)

	if err := m.Pin("A"); !errors.Is(err, ErrAlreadyPinned) {
		t.Fatalf("expected ErrAlreadyPinned, got %v", err)
	}
	assertPinned(t, m, "A")
}

func TestPinEmptyRef(t *testing.T) {
	m := NewPinManager(nil, 3)
	if err := m.Pin(""); err == nil {
		t.Fatal("expected error for empty ref")
	}
}

func TestUnpinNotPinned(t *testing.T) {
	m := NewPinManager(nil, 3)
	if err := m.Unpin("A"); !errors.Is(err, ErrNotPinned) {
		t.Fatalf("expected ErrNotPinned, got %v", err)
	}
}

func TestUnpinThenPinAppends(t *testing.T) {
	m := NewPinManager(refs.FromStrings([]string{"A", "B", "C"}), 5)

	if err := m.Unpin("A"); err != nil {
		t.Fatalf("unexpected unpin error: %v", err)
	}
	if err := m.Pin("A"); err != nil {
		t.Fatalf("unexpected pin error: %v", err)
	}
	assertPinned(t, m, "B", "C", "A")
}

func TestReorder(t *testing.T) {
	m := NewPinManager(refs.FromStrings([]string{"A", "B", "C"}), 5)

	if !m.Reorder("C", "A") {
		t.Fatal("expected reorder to change the list")
	}
	assertPinned(t, m, "C", "A", "B")

	if m.Reorder("missing", "A") {
		t.Fatal("expected reorder with unknown ref to be ignored")
	}
	assertPinned(t, m, "C", "A", "B")

	if !m.MoveToEnd("C") {
		t.Fatal("expected move to end")
	}
	assertPinned(t, m, "A", "B", "C")
}

func TestZeroCapacityRejectsPins(t *testing.T) {
	m := NewPinManager(nil, 0)
	if err := m.Pin("A"); !errors.Is(err, ErrAtCapacity) {
		t.Fatalf("expected ErrAtCapacity, got %v", err)
	}
}

func TestSetCapacityTrims(t *testing.T) {
	m := NewPinManager(refs.FromStrings([]string{"A", "B", "C"}), 5)
	if !m.SetCapacity(1) {
		t.Fatal("expected trim")
	}
	assertPinned(t, m, "A")
	if !m.Full() {
		t.Fatal("expected list to be full")
	}
}
