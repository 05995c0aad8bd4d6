package proj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odor-source-service/internal/pkg/proj"
	"github.com/odor-source-service/internal/pkg/utils"
)

func TestForward_CentralMeridianOrigin(t *testing.T) {
	// The equator point on the central meridian maps onto the false origin.
	p := proj.UTM43N.Forward(0, 75)

	assert.InDelta(t, 500000.0, p.X, 1e-6)
	assert.InDelta(t, 0.0, p.Y, 1e-6)
}

func TestForward_WestOfMeridianIsWest(t *testing.T) {
	// Ahmedabad lies west of 75°E, so its easting must fall below 500 km.
	p := proj.UTM43N.Forward(23.0225, 72.5714)

	assert.Less(t, p.X, 500000.0)
	assert.Greater(t, p.Y, 2000000.0) // well north of the equator
	assert.Less(t, p.Y, 3000000.0)
}

func TestDistance_MatchesHaversine(t *testing.T) {
	// Planar distances in the projection must agree with great-circle
	// distances to well under a percent across the metro area. Haversine
	// uses a spherical earth, so the comparison tolerance absorbs the
	// sphere-vs-ellipsoid difference.
	pairs := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
	}{
		{"across the city", 23.0225, 72.5714, 23.0958, 72.5143},
		{"north-south", 22.95, 72.60, 23.10, 72.60},
		{"east-west", 23.02, 72.45, 23.02, 72.70},
		{"short hop", 23.0000, 72.6200, 23.0010, 72.6210},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			a := proj.UTM43N.Forward(p.lat1, p.lon1)
			b := proj.UTM43N.Forward(p.lat2, p.lon2)
			planar := proj.Distance(a, b)
			haversine := utils.HaversineDistance(p.lat1, p.lon1, p.lat2, p.lon2) * 1000

			assert.InEpsilon(t, haversine, planar, 0.01)
		})
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	p := proj.UTM43N.Forward(23.0, 72.6)
	assert.Equal(t, 0.0, proj.Distance(p, p))
}

func TestForward_PreservesOrdering(t *testing.T) {
	// Moving north increases northing, moving east increases easting.
	base := proj.UTM43N.Forward(23.00, 72.60)
	north := proj.UTM43N.Forward(23.05, 72.60)
	east := proj.UTM43N.Forward(23.00, 72.65)

	assert.Greater(t, north.Y, base.Y)
	assert.Greater(t, east.X, base.X)
}
