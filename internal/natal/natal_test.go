package natal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/papapumpkin/astrolabe/internal/aspects"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taipei1990() Input {
	return Input{
		Name:        "reference",
		Date:        "1990-05-15",
		Time:        "14:00",
		TZOffset:    8,
		Latitude:    25.03,
		Longitude:   121.56,
		HouseSystem: houses.Placidus,
		Gender:      ziwei.Male,
	}
}

func TestCompute(t *testing.T) {
	t.Parallel()

	c, err := Compute(taipei1990())
	require.NoError(t, err)

	wantJD, err := ephemeris.JulianDate("1990-05-15", "14:00", 8)
	require.NoError(t, err)
	assert.Equal(t, wantJD, c.JD)
	assert.InDelta(t, ephemeris.MeanObliquity(c.JD), c.Obliquity, 1e-12)
	assert.True(t, c.Houses.Converged)

	require.Len(t, c.Placements, len(ephemeris.ChartBodies))
	for i, p := range c.Placements {
		assert.Equal(t, ephemeris.ChartBodies[i], p.Body)
		assert.GreaterOrEqual(t, p.House, 1)
		assert.LessOrEqual(t, p.House, 12)
		assert.Equal(t, houses.Index(p.Longitude, c.Houses.Cusps)+1, p.House)
		assert.NotEmpty(t, p.Sign)
	}
	// Mid-May: the Sun is in Taurus.
	assert.Equal(t, "Taurus", c.Placements[0].Sign)

	for _, a := range c.Aspects {
		assert.False(t, a.Transit)
		assert.NotEqual(t, a.A, a.B)
	}

	hemi := c.Distribution.Hemispheres
	assert.Equal(t, len(c.Placements), hemi.East+hemi.West)
	assert.Equal(t, len(c.Placements), hemi.North+hemi.South)

	require.NotNil(t, c.ZiWei)
	assert.Equal(t, ziwei.LunarDate{Year: 1990, Month: 4, Day: 21}, c.ZiWei.Lunar)
	assert.Len(t, c.Decades, 12)
	assert.NotEmpty(t, c.HumanDesign.Type)
}

func TestCompute_Options(t *testing.T) {
	t.Parallel()

	c, err := Compute(taipei1990(),
		WithObliquity(23.4393),
		WithMaxIterations(40),
		WithBodies(ephemeris.Sun, ephemeris.Moon),
	)
	require.NoError(t, err)

	assert.Equal(t, 23.4393, c.Obliquity)
	require.Len(t, c.Placements, 2)
	assert.Equal(t, ephemeris.Moon, c.Placements[1].Body)
}

func TestCompute_OutsideLunarTable(t *testing.T) {
	t.Parallel()

	in := taipei1990()
	in.Date = "1850-03-01"
	c, err := Compute(in)
	require.NoError(t, err)
	assert.Nil(t, c.ZiWei)
	assert.Nil(t, c.Decades)
	assert.NotEmpty(t, c.Placements)
}

func TestCompute_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Input)
		want   error
	}{
		{"bad date", func(in *Input) { in.Date = "1990-02-30" }, ephemeris.ErrInvalidDate},
		{"bad time", func(in *Input) { in.Time = "25:00" }, ephemeris.ErrInvalidTime},
		{"latitude", func(in *Input) { in.Latitude = 91 }, ErrInvalidLocation},
		{"longitude", func(in *Input) { in.Longitude = -181 }, ErrInvalidLocation},
		{"offset", func(in *Input) { in.TZOffset = 15 }, ErrInvalidOffset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := taipei1990()
			tt.modify(&in)
			c, err := Compute(in)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := Compute(taipei1990())
	require.NoError(t, err)
	b, err := Compute(taipei1990())
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("charts differ (-first +second):\n%s", diff)
	}
}

func TestTransits(t *testing.T) {
	t.Parallel()

	natal, err := Compute(taipei1990())
	require.NoError(t, err)

	tr, err := Transits(natal, "2020-01-01", "12:00", 0)
	require.NoError(t, err)
	require.Len(t, tr.Placements, len(natal.Placements))
	for i := 1; i < len(tr.Aspects); i++ {
		assert.LessOrEqual(t, tr.Aspects[i-1].Orb, tr.Aspects[i].Orb)
	}
	for _, a := range tr.Aspects {
		assert.True(t, a.Transit)
	}

	_, err = Transits(natal, "2020-01-01", "noon", 0)
	assert.ErrorIs(t, err, ephemeris.ErrInvalidTime)

	_, err = Transits(nil, "2020-01-01", "12:00", 0)
	assert.ErrorIs(t, err, ErrNoChart)
}

func TestSynastry_SelfHasEveryConjunction(t *testing.T) {
	t.Parallel()

	c, err := Compute(taipei1990())
	require.NoError(t, err)

	as, err := Synastry(c, c)
	require.NoError(t, err)

	// Every body conjoins itself exactly.
	exact := 0
	for _, a := range as {
		if a.A == a.B {
			assert.Equal(t, aspects.Conjunction, a.Type)
			assert.Zero(t, a.Orb)
			exact++
		}
	}
	assert.Equal(t, len(c.Placements), exact)

	_, err = Synastry(c, nil)
	assert.ErrorIs(t, err, ErrNoChart)
}
