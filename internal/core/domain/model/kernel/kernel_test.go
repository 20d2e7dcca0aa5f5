package kernel_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidLocation(t *testing.T, lat, lng float64) kernel.GeoLocation {
	t.Helper()
	location, err := kernel.NewGeoLocation(lat, lng, "")
	require.NoError(t, err)
	return location
}

func TestNewUUID(t *testing.T) {
	t.Run("should create valid unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("should round-trip through string form", func(t *testing.T) {
		original := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("should return error for malformed input", func(t *testing.T) {
		testCases := []string{
			"",
			"not-a-uuid",
			"12345",
			"xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx",
		}

		for _, input := range testCases {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input %q should fail", input)
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through byte form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		parsed, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(original))
	})

	t.Run("should reject nil UUID bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
	})

	t.Run("should reject wrong-length slices", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{1, 2, 3})

		require.Error(t, err)
	})
}

func TestNewGeoLocation(t *testing.T) {
	t.Run("should create location with valid coordinates", func(t *testing.T) {
		loc, err := kernel.NewGeoLocation(55.751244, 37.618423, "Moscow")

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
		assert.InDelta(t, 55.751244, loc.Latitude(), 0.000001)
		assert.InDelta(t, 37.618423, loc.Longitude(), 0.000001)
		assert.Equal(t, "Moscow", loc.Address())
	})

	t.Run("should allow empty address", func(t *testing.T) {
		loc, err := kernel.NewGeoLocation(0, 0, "")

		require.NoError(t, err)
		assert.Empty(t, loc.Address())
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"latitude too low", -90.1, 0},
			{"latitude too high", 90.1, 0},
			{"longitude too low", 0, -180.1},
			{"longitude too high", 0, 180.1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoLocation(tc.lat, tc.lng, "")

				require.Error(t, err)
			})
		}
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"antimeridian west", 0, -180},
			{"antimeridian east", 0, 180},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				loc, err := kernel.NewGeoLocation(tc.lat, tc.lng, "")

				require.NoError(t, err)
				require.NoError(t, loc.Validate())
			})
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var loc kernel.GeoLocation

		err := loc.Validate()

		require.Error(t, err)
	})
}

func TestGeoLocation_IsEqual(t *testing.T) {
	t.Run("should compare by coordinates and ignore address", func(t *testing.T) {
		loc1, err := kernel.NewGeoLocation(10, 20, "warehouse A")
		require.NoError(t, err)
		loc2, err := kernel.NewGeoLocation(10, 20, "warehouse B")
		require.NoError(t, err)

		equal, err := loc1.IsEqual(loc2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should return false for different coordinates", func(t *testing.T) {
		loc1 := createValidLocation(t, 10, 20)
		loc2 := createValidLocation(t, 10, 21)

		equal, err := loc1.IsEqual(loc2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should return error for unconstructed operand", func(t *testing.T) {
		loc := createValidLocation(t, 10, 20)
		var zero kernel.GeoLocation

		_, err := loc.IsEqual(zero)

		require.Error(t, err)
	})
}

func TestGeoLocation_DistanceTo(t *testing.T) {
	t.Run("should return zero for identical points", func(t *testing.T) {
		loc := createValidLocation(t, 48.8566, 2.3522)

		distance, err := loc.DistanceTo(loc)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, distance, 0.0001)
	})

	t.Run("should calculate known great-circle distances", func(t *testing.T) {
		testCases := []struct {
			name       string
			fromLat    float64
			fromLng    float64
			toLat      float64
			toLng      float64
			expectedKm float64
		}{
			{
				name:    "Moscow to Saint Petersburg",
				fromLat: 55.7558, fromLng: 37.6173,
				toLat: 59.9311, toLng: 30.3609,
				expectedKm: 634,
			},
			{
				name:    "Paris to London",
				fromLat: 48.8566, fromLng: 2.3522,
				toLat: 51.5074, toLng: -0.1278,
				expectedKm: 344,
			},
			{
				name:    "one degree of latitude at equator",
				fromLat: 0, fromLng: 0,
				toLat: 1, toLng: 0,
				expectedKm: 111.19,
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				from := createValidLocation(t, tc.fromLat, tc.fromLng)
				to := createValidLocation(t, tc.toLat, tc.toLng)

				distance, err := from.DistanceTo(to)

				require.NoError(t, err)
				assert.InEpsilon(t, tc.expectedKm, distance, 0.01)
			})
		}
	})

	t.Run("should be symmetric", func(t *testing.T) {
		a := createValidLocation(t, 40.7128, -74.0060)
		b := createValidLocation(t, 34.0522, -118.2437)

		ab, err := a.DistanceTo(b)
		require.NoError(t, err)
		ba, err := b.DistanceTo(a)
		require.NoError(t, err)

		assert.InEpsilon(t, ab, ba, 0.000001)
	})

	t.Run("should return error for unconstructed operand", func(t *testing.T) {
		loc := createValidLocation(t, 10, 20)
		var zero kernel.GeoLocation

		_, err := loc.DistanceTo(zero)

		require.Error(t, err)
	})
}

func TestNewTimeWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create window with valid bounds", func(t *testing.T) {
		window, err := kernel.NewTimeWindow(start, end)

		require.NoError(t, err)
		require.NoError(t, window.Validate())
		assert.Equal(t, start, window.Start())
		assert.Equal(t, end, window.End())
		assert.Equal(t, 3*time.Hour, window.Duration())
	})

	t.Run("should reject zero start", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(time.Time{}, end)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "start")
	})

	t.Run("should reject zero end", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(start, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "end")
	})

	t.Run("should reject start equal to end", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(start, start)

		require.Error(t, err)
	})

	t.Run("should reject start after end", func(t *testing.T) {
		_, err := kernel.NewTimeWindow(end, start)

		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var window kernel.TimeWindow

		err := window.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrTimeWindowIsNotConstructed, err)
	})
}
