package refs

import (
	"reflect"
	"testing"
)

func list(refs ...string) []NoteRef {
	return FromStrings(refs)
}

func assertItems(t *testing.T, s *Store, want ...string) {
	t.Helper()
	got := s.Items()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(got, list(want...)) {
		t.Fatalf("unexpected items: got %v, want %v", got, want)
	}
}

func TestNewStoreDedupesAndTruncates(t *testing.T) {
	s := NewStore(list("a", "b", "a", "", "c", "d"), 3)
	assertItems(t, s, "a", "b", "c")

	if s.Capacity() != 3 {
		t.Fatalf("unexpected capacity %d", s.Capacity())
	}
}

func TestNewStoreNegativeCapacity(t *testing.T) {
	s := NewStore(list("a"), -4)
	assertItems(t, s)
	if s.Capacity() != 0 {
		t.Fatalf("expected capacity clamped to 0, got %d", s.Capacity())
	}
}

func TestInsertFrontRecencyScenario(t *testing.T) {
	s := NewStore(nil, 2)

	steps := []struct {
		ref  string
		want []string
	}{
		{"X", []string{"X"}},
		{"Y", []string{"Y", "X"}},
		{"X", []string{"X", "Y"}},
		{"Z", []string{"Z", "X"}},
	}

	for _, step := range steps {
		s.InsertFront(NoteRef(step.ref))
		assertItems(t, s, step.want...)
	}
}

func TestInsertFrontIsIdempotent(t *testing.T) {
	s := NewStore(list("a", "b", "c"), 5)
	s.InsertFront("b")
	once := s.Items()
	s.InsertFront("b")

	if !reflect.DeepEqual(once, s.Items()) {
		t.Fatalf("second insert changed the list: %v -> %v", once, s.Items())
	}
}

func TestInsertFrontZeroCapacity(t *testing.T) {
	s := NewStore(nil, 0)
	s.InsertFront("a")
	assertItems(t, s)
}

func TestAppend(t *testing.T) {
	s := NewStore(list("a", "b"), 3)

	if s.Append("a") {
		t.Fatal("expected duplicate append to fail")
	}
	if !s.Append("c") {
		t.Fatal("expected append with room to succeed")
	}
	if s.Append("d") {
		t.Fatal("expected append at capacity to fail")
	}
	assertItems(t, s, "a", "b", "c")
}

func TestRemove(t *testing.T) {
	s := NewStore(list("a", "b", "c"), 3)

	if !s.Remove("b") {
		t.Fatal("expected removal of present ref")
	}
	if s.Remove("b") {
		t.Fatal("expected second removal to report false")
	}
	assertItems(t, s, "a", "c")
}

func TestMoveTo(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		ref     string
		target  string
		moved   bool
		want    []string
	}{
		{"move last before first", []string{"a", "b", "c"}, "c", "a", true, []string{"c", "a", "b"}},
		{"move first before last", []string{"a", "b", "c"}, "a", "c", true, []string{"b", "a", "c"}},
		{"move middle before first", []string{"a", "b", "c"}, "b", "a", true, []string{"b", "a", "c"}},
		{"already before target", []string{"a", "b", "c"}, "a", "b", false, []string{"a", "b", "c"}},
		{"same ref", []string{"a", "b"}, "a", "a", false, []string{"a", "b"}},
		{"missing ref", []string{"a", "b"}, "z", "a", false, []string{"a", "b"}},
		{"missing target", []string{"a", "b"}, "a", "z", false, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(list(tt.initial...), 10)
			if got := s.MoveTo(NoteRef(tt.ref), NoteRef(tt.target)); got != tt.moved {
				t.Fatalf("MoveTo returned %v, want %v", got, tt.moved)
			}
			assertItems(t, s, tt.want...)
		})
	}
}

func TestMoveToEnd(t *testing.T) {
	s := NewStore(list("a", "b", "c"), 5)
	if !s.MoveToEnd("a") {
		t.Fatal("expected move to end")
	}
	assertItems(t, s, "b", "c", "a")
	if s.MoveToEnd("a") {
		t.Fatal("expected no-op when already last")
	}
}

func TestReplace(t *testing.T) {
	s := NewStore(list("a", "b", "c"), 5)

	if !s.Replace("b", "b2") {
		t.Fatal("expected replace of present ref")
	}
	assertItems(t, s, "a", "b2", "c")

	if s.Replace("b", "b2") {
		t.Fatal("expected replaying the rename to be a no-op")
	}
	assertItems(t, s, "a", "b2", "c")

	if s.Replace("missing", "x") {
		t.Fatal("expected replace of absent ref to be a no-op")
	}
}

func TestReplaceCollapsesDuplicate(t *testing.T) {
	s := NewStore(list("a", "b", "c"), 5)
	s.Replace("a", "c")
	assertItems(t, s, "c", "b")
}

func TestFilterValidDoesNotMutate(t *testing.T) {
	s := NewStore(list("a", "gone", "b"), 5)

	kept, removed := s.FilterValid(func(r NoteRef) bool { return r != "gone" })
	if !removed {
		t.Fatal("expected removal to be reported")
	}
	if !reflect.DeepEqual(kept, list("a", "b")) {
		t.Fatalf("unexpected kept list %v", kept)
	}
	assertItems(t, s, "a", "gone", "b")

	s.Commit(kept)
	assertItems(t, s, "a", "b")

	_, removed = s.FilterValid(func(NoteRef) bool { return true })
	if removed {
		t.Fatal("expected no removal when all refs exist")
	}
}

func TestSetCapacityTruncatesTail(t *testing.T) {
	s := NewStore(list("a", "b", "c", "d"), 10)

	if !s.SetCapacity(2) {
		t.Fatal("expected truncation to be reported")
	}
	assertItems(t, s, "a", "b")

	if s.SetCapacity(5) {
		t.Fatal("growing capacity should not drop entries")
	}
	if s.Full() {
		t.Fatal("store should have room after growing capacity")
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	s := NewStore(list("a"), 2)
	items := s.Items()
	items[0] = "mutated"
	assertItems(t, s, "a")
}
