package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceSmallInputsUnchanged(t *testing.T) {
	assert.Empty(t, Sequence(nil))
	assert.Empty(t, Sequence([]Point{}))

	one := []Point{{Lat: 1, Lng: 2}}
	assert.Equal(t, one, Sequence(one))

	two := []Point{{Lat: 1, Lng: 2}, {Lat: 3, Lng: 4}}
	assert.Equal(t, two, Sequence(two))
}

func TestSequenceOrdersCollinearPoints(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 10, Lng: 0},
		{Lat: 5, Lng: 0},
	}

	got := Sequence(points)

	want := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 5, Lng: 0},
		{Lat: 10, Lng: 0},
	}
	assert.Equal(t, want, got)
}

func TestSequenceStartsFromFirstPoint(t *testing.T) {
	points := []Point{
		{Lat: 50, Lng: 50},
		{Lat: 0, Lng: 0},
		{Lat: 51, Lng: 50},
	}

	got := Sequence(points)

	require.Len(t, got, 3)
	assert.Equal(t, points[0], got[0])
	// Nearest to the start is (51,50), not (0,0)
	assert.Equal(t, Point{Lat: 51, Lng: 50}, got[1])
	assert.Equal(t, Point{Lat: 0, Lng: 0}, got[2])
}

func TestSequenceIsPermutation(t *testing.T) {
	points := []Point{
		{Lat: 3, Lng: 7},
		{Lat: -2, Lng: 4},
		{Lat: 9, Lng: 1},
		{Lat: 0.5, Lng: 0.5},
		{Lat: 6, Lng: 6},
	}

	got := Sequence(points)

	require.Len(t, got, len(points))
	assert.ElementsMatch(t, points, got)
}

func TestSequenceDoesNotMutateInput(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 10, Lng: 0},
		{Lat: 5, Lng: 0},
	}
	original := make([]Point, len(points))
	copy(original, points)

	Sequence(points)

	assert.Equal(t, original, points)
}

func TestSequenceTieBreaksOnFirstIndex(t *testing.T) {
	// Both candidates are equidistant from the start; the earlier one wins
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 0},
	}

	got := Sequence(points)

	assert.Equal(t, Point{Lat: 0, Lng: 1}, got[1])
}

func TestSequenceHandlesDuplicatePoints(t *testing.T) {
	points := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 5, Lng: 5},
		{Lat: 0, Lng: 0},
	}

	got := Sequence(points)

	require.Len(t, got, 3)
	assert.Equal(t, Point{Lat: 0, Lng: 0}, got[0])
	assert.Equal(t, Point{Lat: 0, Lng: 0}, got[1])
	assert.Equal(t, Point{Lat: 5, Lng: 5}, got[2])
}
