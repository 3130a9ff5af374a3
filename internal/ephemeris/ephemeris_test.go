package ephemeris

import (
	"math"
	"testing"

	"github.com/papapumpkin/astrolabe/internal/angle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveKepler(t *testing.T) {
	t.Parallel()

	for _, e := range []float64{0, 0.0167, 0.2056, 0.379} {
		for m := -3.0; m <= 3.0; m += 0.25 {
			ea := SolveKepler(m, e)
			if got := ea - e*math.Sin(ea); math.Abs(got-m) > 1e-12 {
				t.Errorf("SolveKepler(%v, %v): residual %v", m, e, got-m)
			}
		}
	}
}

// referenceLongitudes are geocentric longitudes at 12:00 UTC, checked
// against JPL Horizons. Chiron runs through the same Keplerian pipeline as
// the planets and is held to the same tolerance.
var referenceLongitudes = []struct {
	date string
	want map[Body]float64
}{
	{
		date: "2000-01-01",
		want: map[Body]float64{
			Sun: 280.37, Mercury: 271.89, Venus: 241.57, Mars: 327.96,
			Jupiter: 25.25, Saturn: 40.40, Uranus: 314.81, Neptune: 303.19, Pluto: 251.45,
			Chiron: 251.11,
		},
	},
	{
		date: "2020-01-01",
		want: map[Body]float64{
			Sun: 280.52, Mercury: 275.17, Venus: 315.02, Mars: 238.72,
			Jupiter: 276.79, Saturn: 291.45, Uranus: 32.69, Neptune: 346.27, Pluto: 292.40,
			Chiron: 1.40,
		},
	},
}

// referenceTolerance is the allowed error in degrees against the
// reference longitudes.
const referenceTolerance = 0.1

func TestLongitude_AgainstReference(t *testing.T) {
	t.Parallel()

	for _, ref := range referenceLongitudes {
		jd, err := JulianDate(ref.date, "12:00", 0)
		require.NoError(t, err)
		for body, want := range ref.want {
			got := Longitude(body, jd)
			if d := angle.Separation(got, want); d > referenceTolerance {
				t.Errorf("%s %s: longitude %.3f, reference %.3f (off by %.3f)", ref.date, body, got, want, d)
			}
		}
	}
}

func TestLongitude_SunAndEarthOpposed(t *testing.T) {
	t.Parallel()

	for jd := 2415020.0; jd < 2488070; jd += 3652.5 {
		d := angle.Separation(Longitude(Sun, jd), Longitude(Earth, jd))
		assert.InDelta(t, 180, d, 1e-9)
	}
}

func TestMoonLongitude_MeeusExample(t *testing.T) {
	t.Parallel()

	// Astronomical Algorithms example 47.a: 1992 April 12, 0h.
	assert.InDelta(t, 133.162655, MoonLongitude(2448724.5), 0.01)
}

func TestMeanNode(t *testing.T) {
	t.Parallel()

	// Astronomical Algorithms example 22.a: 1987 April 10, 0h.
	assert.InDelta(t, 11.2531, MeanNode(2446895.5), 1e-3)
	assert.InDelta(t, 180, angle.Separation(Longitude(NorthNode, J2000), Longitude(SouthNode, J2000)), 1e-9)
}

func TestMeanObliquity(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 23.4392911, MeanObliquity(J2000), 1e-9)
	assert.Less(t, MeanObliquity(J2000+DaysPerCentury), MeanObliquity(J2000))
}

func TestLongitude_AlwaysNormalized(t *testing.T) {
	t.Parallel()

	bodies := append([]Body{Earth, SouthNode}, ChartBodies...)
	for jd := 2400000.0; jd < 2500000; jd += 1234.567 {
		for _, b := range bodies {
			lon := Longitude(b, jd)
			if lon < 0 || lon >= 360 || math.IsNaN(lon) {
				t.Fatalf("Longitude(%s, %v) = %v, outside [0,360)", b, jd, lon)
			}
		}
	}
}

func TestUnknownBody(t *testing.T) {
	t.Parallel()

	var ceres Body = "Ceres"
	assert.Equal(t, 0.0, Longitude(ceres, J2000))
	assert.Equal(t, Vec3{}, Heliocentric(ceres, J2000))
	assert.False(t, IsRetrograde(ceres, J2000))

	_, ok := ElementsOf(ceres)
	assert.False(t, ok)
}

func TestIsRetrograde_KnownPeriods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body Body
		date string
		want bool
	}{
		{"mercury before february station", Mercury, "2020-01-15", false},
		{"mercury mid retrograde", Mercury, "2020-03-01", true},
		{"mercury direct again", Mercury, "2020-04-01", false},
		{"mars at opposition", Mars, "2020-10-13", true},
		{"mars direct in summer", Mars, "2020-07-01", false},
		{"mean node always retrograde", NorthNode, "2020-07-01", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			jd, err := JulianDate(tt.date, "00:00", 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, IsRetrograde(tt.body, jd))
		})
	}
}

func TestIsRetrograde_SunMoonNever(t *testing.T) {
	t.Parallel()

	for jd := 2440000.0; jd < 2470000; jd += 0.37 * 97 {
		if IsRetrograde(Sun, jd) || IsRetrograde(Moon, jd) {
			t.Fatalf("Sun or Moon reported retrograde at jd %v", jd)
		}
	}
}

func TestPositions(t *testing.T) {
	t.Parallel()

	got := Positions(J2000, ChartBodies)
	require.Len(t, got, len(ChartBodies))
	for i, p := range got {
		assert.Equal(t, ChartBodies[i], p.Body)
		assert.InDelta(t, Longitude(p.Body, J2000), p.Longitude, 0)
	}
}

func TestVec3(t *testing.T) {
	t.Parallel()

	v := Vec3{3, 4, 0}
	assert.Equal(t, 5.0, v.Norm())
	assert.Equal(t, Vec3{2, 3, -1}, v.Sub(Vec3{1, 1, 1}))
	assert.InDelta(t, 90, Vec3{0, 1, 0}.Longitude(), 1e-12)
	assert.InDelta(t, 270, Vec3{0, 1, 0}.Scale(-1).Longitude(), 1e-12)
}
