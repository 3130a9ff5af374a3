package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/papapumpkin/astrolabe/internal/houses"
	"github.com/papapumpkin/astrolabe/internal/natal"
	"github.com/papapumpkin/astrolabe/internal/ziwei"
)

// Parse reads and validates the batch file at path. The format is chosen
// by extension. Validation problems are joined into one error whose parts
// are *ValidationError values.
func Parse(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	f, err := decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	f.Path = path

	if len(f.Charts) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoCharts)
	}
	if errs := Validate(f); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i := range errs {
			joined[i] = &errs[i]
		}
		return nil, errors.Join(joined...)
	}
	return f, nil
}

func decode(ext string, data []byte) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &f, nil
}

// Validate checks every entry and the defaults, returning all problems.
func Validate(f *File) []ValidationError {
	var errs []ValidationError

	if f.Defaults.HouseSystem != "" {
		if _, err := houses.ParseSystem(f.Defaults.HouseSystem); err != nil {
			errs = append(errs, ValidationError{Index: -1, Field: "defaults.house_system", Err: err})
		}
	}

	seen := make(map[string]int)
	for i, e := range f.Charts {
		if e.Name == "" {
			errs = append(errs, ValidationError{Index: i, Field: "name", Err: ErrMissingField})
		} else if prev, ok := seen[e.Name]; ok {
			errs = append(errs, ValidationError{
				Index: i,
				Name:  e.Name,
				Err:   fmt.Errorf("%w: also used by chart %d", ErrDuplicateName, prev+1),
			})
		} else {
			seen[e.Name] = i
		}
		if e.Date == "" {
			errs = append(errs, ValidationError{Index: i, Name: e.Name, Field: "date", Err: ErrMissingField})
		}
		if e.HouseSystem != "" {
			if _, err := houses.ParseSystem(e.HouseSystem); err != nil {
				errs = append(errs, ValidationError{Index: i, Name: e.Name, Field: "house_system", Err: err})
			}
		}
		if e.Gender != "" {
			if _, err := ziwei.ParseGender(e.Gender); err != nil {
				errs = append(errs, ValidationError{Index: i, Name: e.Name, Field: "gender", Err: err})
			}
		}
		if lat := e.Latitude; lat != nil && (*lat < -90 || *lat > 90) {
			errs = append(errs, ValidationError{
				Index: i, Name: e.Name, Field: "latitude",
				Err: fmt.Errorf("%w: %v", ErrInvalidValue, *lat),
			})
		}
	}
	return errs
}

// Inputs resolves every entry into a natal input. Fields an entry omits
// come from the file defaults, then from fallback.
func (f *File) Inputs(fallback natal.Input) ([]natal.Input, error) {
	base := fallback
	if d := f.Defaults; d.HouseSystem != "" {
		sys, err := houses.ParseSystem(d.HouseSystem)
		if err != nil {
			return nil, err
		}
		base.HouseSystem = sys
	}
	setFloat(&base.TZOffset, f.Defaults.TZOffset)
	setFloat(&base.Latitude, f.Defaults.Latitude)
	setFloat(&base.Longitude, f.Defaults.Longitude)

	out := make([]natal.Input, 0, len(f.Charts))
	for _, e := range f.Charts {
		in := base
		in.Name = e.Name
		in.Date = e.Date
		in.Time = e.Time
		if in.Time == "" {
			in.Time = defaultTime
		}
		setFloat(&in.TZOffset, e.TZOffset)
		setFloat(&in.Latitude, e.Latitude)
		setFloat(&in.Longitude, e.Longitude)
		if e.HouseSystem != "" {
			sys, err := houses.ParseSystem(e.HouseSystem)
			if err != nil {
				return nil, fmt.Errorf("chart %q: %w", e.Name, err)
			}
			in.HouseSystem = sys
		}
		if e.Gender != "" {
			g, err := ziwei.ParseGender(e.Gender)
			if err != nil {
				return nil, fmt.Errorf("chart %q: %w", e.Name, err)
			}
			in.Gender = g
		}
		out = append(out, in)
	}
	return out, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
