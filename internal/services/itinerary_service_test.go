package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuji-trip/tripmap/internal/constants"
	"fuji-trip/tripmap/internal/models/entities"
)

func TestEffectiveValuesFallBackToBuiltIn(t *testing.T) {
	ctx := context.Background()
	f := newItineraryFixture(t)

	require.NoError(t, f.svc.SaveDetails(ctx, "2-1", "搭 10:30 那班"))
	saved, err := f.svc.SaveLocation(ctx, "3-2", 35.5, "138.8")
	require.NoError(t, err)
	require.True(t, saved)

	for _, day := range f.svc.Itinerary(ctx) {
		for _, e := range day.Events {
			switch e.ID {
			case "2-1":
				assert.Equal(t, "搭 10:30 那班", e.EffectiveDetails)
				assert.True(t, e.DetailsOverridden)
			default:
				assert.Equal(t, e.Details, e.EffectiveDetails, e.ID)
				assert.False(t, e.DetailsOverridden, e.ID)
			}

			switch e.ID {
			case "3-2":
				assert.Equal(t, entities.LatLng{Lat: 35.5, Lng: 138.8}, e.EffectiveLocation)
				assert.True(t, e.LocationOverridden)
			default:
				assert.Equal(t, e.Position(), e.EffectiveLocation, e.ID)
			}
		}
	}
}

func TestSaveDetailsFallsBackWhenRemoteDown(t *testing.T) {
	ctx := context.Background()
	f := newItineraryFixture(t)
	f.notesRemote.setDown(true)

	require.NoError(t, f.svc.SaveDetails(ctx, "1-3", "offline edit"))

	doc, ok := f.local.Get(constants.StorageKeyEventDetails)
	require.True(t, ok)
	assert.Contains(t, doc, "offline edit")

	ev, err := f.svc.Event(ctx, "1-3")
	require.NoError(t, err)
	assert.Equal(t, "offline edit", ev.EffectiveDetails)

	// Once the remote is back the next read moves the edit up.
	f.notesRemote.setDown(false)
	ev, err = f.svc.Event(ctx, "1-3")
	require.NoError(t, err)
	assert.Equal(t, "offline edit", ev.EffectiveDetails)
	assert.Equal(t, "offline edit", f.notesRemote.entries["1-3"].Value)
}

func TestOverrideWritesRejectUnknownEvents(t *testing.T) {
	ctx := context.Background()
	f := newItineraryFixture(t)

	err := f.svc.SaveDetails(ctx, "9-9", "orphan")
	assert.ErrorIs(t, err, ErrUnknownEvent)

	_, err = f.svc.SaveLocation(ctx, "9-9", 1, 2)
	assert.ErrorIs(t, err, ErrUnknownEvent)

	assert.Empty(t, f.notesRemote.entries)
	assert.Empty(t, f.placesRemote.entries)
}

func TestSaveLocationSkipsMalformedInput(t *testing.T) {
	ctx := context.Background()
	f := newItineraryFixture(t)

	inputs := []struct {
		name     string
		lat, lng interface{}
	}{
		{name: "text", lat: "abc", lng: "139.1"},
		{name: "empty", lat: "", lng: ""},
		{name: "out of range", lat: 95.0, lng: 139.0},
		{name: "missing", lat: nil, lng: 139.0},
		{name: "boolean", lat: true, lng: 139.0},
	}
	for _, in := range inputs {
		t.Run(in.name, func(t *testing.T) {
			saved, err := f.svc.SaveLocation(ctx, "1-3", in.lat, in.lng)
			require.NoError(t, err)
			assert.False(t, saved)
		})
	}

	assert.Empty(t, f.placesRemote.entries)
	ev, err := f.svc.Event(ctx, "1-3")
	require.NoError(t, err)
	assert.Equal(t, ev.Position(), ev.EffectiveLocation)
}

func TestMapLinkUsesEffectiveLocation(t *testing.T) {
	ctx := context.Background()
	f := newItineraryFixture(t)

	link, err := f.svc.MapLinkFor(ctx, "1-3")
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=%E8%AE%80%E8%B3%A3%E6%A8%82%E5%9C%92%2035.625%2C139.517", link)

	_, err = f.svc.SaveLocation(ctx, "1-3", "35.6", "139.5")
	require.NoError(t, err)
	link, err = f.svc.MapLinkFor(ctx, "1-3")
	require.NoError(t, err)
	assert.Contains(t, link, "35.6%2C139.5")

	_, err = f.svc.MapLinkFor(ctx, "nope")
	assert.ErrorIs(t, err, ErrUnknownEvent)
}

func TestLegDistances(t *testing.T) {
	ctx := context.Background()
	f := newItineraryFixture(t)

	day, err := f.svc.Day(ctx, 2)
	require.NoError(t, err)
	require.NotEmpty(t, day.Events)

	assert.Nil(t, day.Events[0].LegDistanceKm, "first event has no previous leg")
	for _, e := range day.Events[1:] {
		require.NotNil(t, e.LegDistanceKm, e.ID)
		assert.GreaterOrEqual(t, *e.LegDistanceKm, 0.0)
	}
	assert.Greater(t, day.TotalDistanceKm, 50.0)

	// Tokyo station to Shinjuku station is roughly 6 km.
	km := LegDistanceKm(entities.LatLng{Lat: 35.6812, Lng: 139.7671}, entities.LatLng{Lat: 35.6896, Lng: 139.7006})
	assert.InDelta(t, 6.1, km, 0.3)

	_, err = f.svc.Day(ctx, 42)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestBookingsAndFlights(t *testing.T) {
	f := newItineraryFixture(t)

	bookings := f.svc.Bookings()
	require.NotEmpty(t, bookings)
	for i := 1; i < len(bookings); i++ {
		assert.LessOrEqual(t, bookings[i-1].Day, bookings[i].Day)
	}

	flights := f.svc.Flights()
	require.Len(t, flights, 2)
	assert.Equal(t, "1-1", flights[0].EventID)
	assert.Equal(t, "5-7", flights[1].EventID)
}

func TestParseLatLng(t *testing.T) {
	pos, ok := ParseLatLng(" 35.36 ", "138.73")
	require.True(t, ok)
	assert.Equal(t, entities.LatLng{Lat: 35.36, Lng: 138.73}, pos)

	_, ok = ParseLatLng("NaN", "138")
	assert.False(t, ok)

	_, ok = ParseLatLng(35.0, 181.0)
	assert.False(t, ok)
}
