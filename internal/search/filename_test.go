package search

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCaseInsensitiveKeepsOrder(t *testing.T) {
	entries := []Entry{
		{Ref: "1", DisplayName: "Alpha"},
		{Ref: "2", DisplayName: "beta"},
		{Ref: "3", DisplayName: "Gamma"},
	}

	got := Search(entries, "a")
	require.Len(t, got, 3)
	assert.Equal(t, "Alpha", got[0].DisplayName)
	assert.Equal(t, "beta", got[1].DisplayName)

	got = Search(entries, "ALP")
	require.Len(t, got, 1)
	assert.Equal(t, "1", string(got[0].Ref))

	assert.Empty(t, Search(entries, "zeta"))
}

func TestSearchBlankQueryDoesNotScan(t *testing.T) {
	assert.Nil(t, Search(nil, ""))
	assert.Nil(t, Search([]Entry{{Ref: "1", DisplayName: " "}}, "   "))
}

func TestSearchCapsResults(t *testing.T) {
	entries := make([]Entry, 0, 50)
	for i := 0; i < 50; i++ {
		entries = append(entries, Entry{DisplayName: fmt.Sprintf("note-%02d", i)})
	}

	got := Search(entries, "note")
	require.Len(t, got, MaxResults)
	assert.Equal(t, "note-00", got[0].DisplayName)
	assert.Equal(t, "note-19", got[MaxResults-1].DisplayName)
}

func TestDebouncerLeadingAndTrailing(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	start := time.Unix(0, 0)

	fire, _ := d.Submit(start)
	assert.True(t, fire, "first keystroke should fire immediately")

	fire, first := d.Submit(start.Add(20 * time.Millisecond))
	assert.False(t, fire)
	fire, second := d.Submit(start.Add(40 * time.Millisecond))
	assert.False(t, fire)

	assert.False(t, d.Expire(first, start.Add(120*time.Millisecond)), "stale token must not fire")
	assert.True(t, d.Expire(second, start.Add(140*time.Millisecond)))
	assert.False(t, d.Expire(second, start.Add(150*time.Millisecond)), "trailing fire happens once")

	fire, _ = d.Submit(start.Add(400 * time.Millisecond))
	assert.True(t, fire, "a keystroke after the window starts a new burst")
}

func TestDebouncerReset(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounce, d.Window())

	now := time.Unix(10, 0)
	d.Submit(now)
	_, token := d.Submit(now.Add(time.Millisecond))
	d.Reset()

	assert.False(t, d.Expire(token, now.Add(time.Second)))
	fire, _ := d.Submit(now.Add(2 * time.Millisecond))
	assert.True(t, fire)
}
