package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
)

const tomlBatch = `
[defaults]
tz_offset = 8.0
latitude = 25.03
longitude = 121.56
house_system = "equal"

[[chart]]
name = "alice"
date = "1990-05-15"
time = "14:00"
gender = "female"

[[chart]]
name = "bob"
date = "1985-11-02"
latitude = 51.48
longitude = 0.0
tz_offset = 0.0
house_system = "placidus"
`

const yamlBatch = `
defaults:
  tz_offset: 8
  latitude: 25.03
  longitude: 121.56
  house_system: equal
chart:
  - name: alice
    date: "1990-05-15"
    time: "14:00"
    gender: female
  - name: bob
    date: "1985-11-02"
    latitude: 51.48
    longitude: 0.0
    tz_offset: 0
    house_system: placidus
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse_Formats(t *testing.T) {
	t.Parallel()

	want := []natal.Input{
		{
			Name: "alice", Date: "1990-05-15", Time: "14:00",
			TZOffset: 8, Latitude: 25.03, Longitude: 121.56,
			HouseSystem: houses.Equal, Gender: ziwei.Female,
		},
		{
			Name: "bob", Date: "1985-11-02", Time: defaultTime,
			TZOffset: 0, Latitude: 51.48, Longitude: 0,
			HouseSystem: houses.Placidus, Gender: ziwei.Male,
		},
	}

	for _, tc := range []struct{ name, file, content string }{
		{"toml", "charts.toml", tomlBatch},
		{"yaml", "charts.yaml", yamlBatch},
		{"yml", "charts.yml", yamlBatch},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(writeFile(t, tc.file, tc.content))
			require.NoError(t, err)

			got, err := f.Inputs(natal.Input{})
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("inputs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInputs_Fallback(t *testing.T) {
	t.Parallel()

	f := &File{Charts: []Entry{{Name: "c", Date: "2000-01-01"}}}
	fallback := natal.Input{TZOffset: -5, Latitude: 40.7, Longitude: -74, HouseSystem: houses.WholeSign}

	got, err := f.Inputs(fallback)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, -5.0, got[0].TZOffset)
	assert.Equal(t, 40.7, got[0].Latitude)
	assert.Equal(t, houses.WholeSign, got[0].HouseSystem)
	assert.Equal(t, defaultTime, got[0].Time)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unsupported extension", "charts.json", `{}`, ErrUnsupportedFormat},
		{"no charts", "charts.toml", "[defaults]\ntz_offset = 1.0\n", ErrNoCharts},
		{"missing name", "charts.toml", "[[chart]]\ndate = \"2000-01-01\"\n", ErrMissingField},
		{"missing date", "charts.toml", "[[chart]]\nname = \"x\"\n", ErrMissingField},
		{"duplicate name", "charts.yaml", "chart:\n  - {name: x, date: \"2000-01-01\"}\n  - {name: x, date: \"2001-01-01\"}\n", ErrDuplicateName},
		{"unknown house system", "charts.toml", "[[chart]]\nname = \"x\"\ndate = \"2000-01-01\"\nhouse_system = \"koch\"\n", houses.ErrUnknownSystem},
		{"bad gender", "charts.toml", "[[chart]]\nname = \"x\"\ndate = \"2000-01-01\"\ngender = \"other\"\n", ziwei.ErrInvalidGender},
		{"latitude out of range", "charts.toml", "[[chart]]\nname = \"x\"\ndate = \"2000-01-01\"\nlatitude = 99.0\n", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := Parse(writeFile(t, tt.file, tt.content))
			assert.Nil(t, f)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_CollectsEveryProblem(t *testing.T) {
	t.Parallel()

	content := "[[chart]]\nname = \"a\"\n\n[[chart]]\ndate = \"2000-01-01\"\n"
	_, err := Parse(writeFile(t, "charts.toml", content))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "chart 1 (a): date: required field missing", ve.Error())
	assert.Contains(t, err.Error(), "chart 2: name: required field missing")
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
