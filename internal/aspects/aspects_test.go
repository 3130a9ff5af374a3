package aspects

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/papapumpkin/astrolabe/internal/ephemeris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(b ephemeris.Body, lon float64) ephemeris.Position {
	return ephemeris.Position{Body: b, Longitude: lon}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   float64
		want   string
		wantOK bool
	}{
		{"exact conjunction", 10, 10, "Conjunction", true},
		{"conjunction across zero", 357, 3, "Conjunction", true},
		{"conjunction edge", 0, 8, "Conjunction", true},
		{"just outside conjunction", 0, 8.5, "", false},
		{"opposition", 10, 185, "Opposition", true},
		{"trine", 0, 240, "Trine", true},
		{"square", 45, 135, "Square", true},
		{"sextile", 100, 161, "Sextile", true},
		{"sextile orb is tighter", 100, 167, "", false},
		{"nothing", 0, 30, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _, ok := Classify(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestFind_SelfComparison(t *testing.T) {
	t.Parallel()

	ps := []ephemeris.Position{
		pos(ephemeris.Sun, 0),
		pos(ephemeris.Moon, 92),
		pos(ephemeris.Mars, 178),
	}
	got := Find(ps, nil)

	want := []Aspect{
		{A: ephemeris.Sun, B: ephemeris.Moon, Type: Square, Separation: 92, Orb: 2, Delta: 2},
		{A: ephemeris.Sun, B: ephemeris.Mars, Type: Opposition, Separation: 178, Orb: 2, Delta: -2},
		{A: ephemeris.Moon, B: ephemeris.Mars, Type: Square, Separation: 86, Orb: 4, Delta: -4},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
}

func TestFind_CrossComparisonFlagsTransits(t *testing.T) {
	t.Parallel()

	natal := []ephemeris.Position{pos(ephemeris.Sun, 10), pos(ephemeris.Moon, 200)}
	transit := []ephemeris.Position{pos(ephemeris.Sun, 10), pos(ephemeris.Saturn, 130)}

	got := Find(natal, transit)
	assert.Len(t, got, 4)
	for _, a := range got {
		assert.True(t, a.Transit)
	}
	// Identical bodies in different sets are still compared.
	assert.Equal(t, ephemeris.Sun, got[0].A)
	assert.Equal(t, ephemeris.Sun, got[0].B)
	assert.Equal(t, "Conjunction", got[0].Type.Name)
}

func TestFind_OrbWithinTolerance(t *testing.T) {
	t.Parallel()

	var ps []ephemeris.Position
	for i := range 40 {
		ps = append(ps, pos(ephemeris.Body(string(rune('A'+i))), float64(i)*9.37))
	}
	for _, a := range Find(ps, nil) {
		if a.Orb > a.Type.Orb {
			t.Errorf("%s-%s %s orb %.3f exceeds %.1f", a.A, a.B, a.Type.Name, a.Orb, a.Type.Orb)
		}
		assert.GreaterOrEqual(t, a.Separation, 0.0)
		assert.LessOrEqual(t, a.Separation, 180.0)
	}
}

func TestFind_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Find(nil, nil))
	assert.Empty(t, Find([]ephemeris.Position{pos(ephemeris.Sun, 1)}, nil))
	assert.Empty(t, Find([]ephemeris.Position{pos(ephemeris.Sun, 1)}, []ephemeris.Position{}))
}

func TestWithinAndBetween(t *testing.T) {
	t.Parallel()

	ps := []ephemeris.Position{pos(ephemeris.Sun, 10), pos(ephemeris.Moon, 130)}

	if diff := cmp.Diff(Within(ps), Find(ps, nil)); diff != "" {
		t.Errorf("Within differs from Find(ps, nil) (-within +find):\n%s", diff)
	}
	if diff := cmp.Diff(Between(ps, ps), Find(ps, ps)); diff != "" {
		t.Errorf("Between differs from Find(ps, ps) (-between +find):\n%s", diff)
	}

	// A nil second set given to Between means no partner, not self pairs.
	assert.Empty(t, Between(ps, nil))
	assert.Empty(t, Between(nil, ps))
	require.Len(t, Within(ps), 1)
	assert.False(t, Within(ps)[0].Transit)
	for _, a := range Between(ps, ps) {
		assert.True(t, a.Transit)
	}
}

func TestSortByOrb(t *testing.T) {
	t.Parallel()

	as := []Aspect{{A: "a", Orb: 3}, {A: "b", Orb: 1}, {A: "c", Orb: 3}, {A: "d", Orb: 0.5}}
	SortByOrb(as)

	var order []ephemeris.Body
	for _, a := range as {
		order = append(order, a.A)
	}
	assert.Equal(t, []ephemeris.Body{"d", "b", "a", "c"}, order)
}
