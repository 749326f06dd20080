package itinerary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuji-trip/tripmap/internal/models/entities"
)

func TestDefaultCatalogHasUniqueIDs(t *testing.T) {
	c := Default()

	seen := map[string]bool{}
	for _, e := range c.Events() {
		require.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
	}
	assert.Len(t, c.Days(), 5)
}

func TestEventDayMatchesPlan(t *testing.T) {
	for _, d := range Default().Days() {
		for _, e := range d.Events {
			assert.Equal(t, d.Day, e.Day, "event %s", e.ID)
		}
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]entities.DayPlan{
		{Day: 1, Events: []entities.TripEvent{{ID: "a"}}},
		{Day: 2, Events: []entities.TripEvent{{ID: "a"}}},
	})
	assert.Error(t, err)
}

func TestNewSortsDays(t *testing.T) {
	c, err := New([]entities.DayPlan{
		{Day: 2, Title: "second"},
		{Day: 1, Title: "first"},
	})
	require.NoError(t, err)

	var titles []string
	for _, d := range c.Days() {
		titles = append(titles, d.Title)
	}
	if diff := cmp.Diff([]string{"first", "second"}, titles); diff != "" {
		t.Errorf("day order mismatch (-want +got):\n%s", diff)
	}
}

func TestDaysReturnsCopies(t *testing.T) {
	c := Default()

	days := c.Days()
	days[0].Events[0].Notes = "changed"

	e, ok := c.Event(days[0].Events[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "changed", e.Notes)

	d, ok := c.Day(1)
	require.True(t, ok)
	assert.NotEqual(t, "changed", d.Events[0].Notes)
}

func TestDayLookup(t *testing.T) {
	c := Default()

	d, ok := c.Day(3)
	require.True(t, ok)
	assert.Equal(t, "2026/01/22 (四)", d.Date)

	_, ok = c.Day(9)
	assert.False(t, ok)
	assert.True(t, c.HasEvent("5-7"))
	assert.False(t, c.HasEvent("9-9"))
}
