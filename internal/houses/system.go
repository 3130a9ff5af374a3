package houses

import (
	"fmt"
	"strings"
)

// System selects a house division algorithm.
type System int

const (
	// Placidus trisects the diurnal and nocturnal semi-arcs.
	Placidus System = iota
	// Equal places cusps every 30 degrees from the Ascendant.
	Equal
	// WholeSign places cusps on the sign boundaries starting with the
	// sign holding the Ascendant.
	WholeSign
)

// String returns the canonical lowercase name of the system.
func (s System) String() string {
	switch s {
	case Placidus:
		return "placidus"
	case Equal:
		return "equal"
	case WholeSign:
		return "whole"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// ParseSystem converts a name such as "placidus", "equal" or "whole" into
// a System. Matching is case-insensitive.
func ParseSystem(name string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "placidus", "p":
		return Placidus, nil
	case "equal", "e":
		return Equal, nil
	case "whole", "wholesign", "whole-sign", "whole_sign", "w":
		return WholeSign, nil
	}
	return Placidus, fmt.Errorf("%w: %q", ErrUnknownSystem, name)
}

// MarshalText implements encoding.TextMarshaler so systems serialize by name.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *System) UnmarshalText(b []byte) error {
	v, err := ParseSystem(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
