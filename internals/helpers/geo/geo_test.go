package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceMeters_ZeroForSamePoint(t *testing.T) {
	p := Location{Lat: -6.2, Lon: 106.816666}
	require.Equal(t, 0.0, DistanceMeters(p, p))
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	pairs := []struct {
		a, b Location
	}{
		{Location{0, 0}, Location{0, 0.001}},
		{Location{51.5, -0.12}, Location{51.5, -0.1201}},
		{Location{-6.2, 106.8}, Location{35.68, 139.69}},
		{Location{89.9, 10}, Location{-89.9, -170}},
	}
	for _, p := range pairs {
		require.Equal(t, DistanceMeters(p.a, p.b), DistanceMeters(p.b, p.a))
	}
}

func TestDistanceMeters_KnownLongitudeStep(t *testing.T) {
	// 0.001 derajat bujur di ekuator ≈ 111.19 m
	d := DistanceMeters(Location{0, 0}, Location{0, 0.001})
	require.InDelta(t, 111.19, d, 0.5)
}

func TestDistanceMeters_GeofenceScale(t *testing.T) {
	host := Location{Lat: 51.5, Lon: -0.12}

	near := DistanceMeters(host, Location{Lat: 51.5, Lon: -0.1201})
	require.Less(t, near, 100.0) // masih dalam radius default

	far := DistanceMeters(host, Location{Lat: 51.5, Lon: -0.1272})
	require.Greater(t, far, 100.0)
	require.InDelta(t, 500, far, 10)
}
