// Package batch computes many natal charts from one TOML or YAML request
// file. Charts are computed concurrently and written as JSON lines in file
// order; a watcher can rerun the batch whenever the file changes.
package batch

// Defaults apply to every entry that does not set the field itself.
type Defaults struct {
	TZOffset    *float64 `toml:"tz_offset" yaml:"tz_offset"`
	Latitude    *float64 `toml:"latitude" yaml:"latitude"`
	Longitude   *float64 `toml:"longitude" yaml:"longitude"`
	HouseSystem string   `toml:"house_system" yaml:"house_system"`
}

// Entry is one requested chart.
type Entry struct {
	Name        string   `toml:"name" yaml:"name"`
	Date        string   `toml:"date" yaml:"date"`
	Time        string   `toml:"time" yaml:"time"`
	TZOffset    *float64 `toml:"tz_offset" yaml:"tz_offset"`
	Latitude    *float64 `toml:"latitude" yaml:"latitude"`
	Longitude   *float64 `toml:"longitude" yaml:"longitude"`
	HouseSystem string   `toml:"house_system" yaml:"house_system"`
	Gender      string   `toml:"gender" yaml:"gender"`
}

// File is a parsed batch request.
type File struct {
	Path     string   `toml:"-" yaml:"-"`
	Defaults Defaults `toml:"defaults" yaml:"defaults"`
	Charts   []Entry  `toml:"chart" yaml:"chart"`
}

// defaultTime is used for entries without a birth time.
const defaultTime = "12:00"
