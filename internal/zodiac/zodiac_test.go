package zodiac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lon  float64
		want string
	}{
		{0, "Aries"},
		{29.999, "Aries"},
		{30, "Taurus"},
		{280.37, "Capricorn"},
		{359.99, "Pisces"},
		{360, "Aries"},
		{-1, "Pisces"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SignOf(tt.lon).Name, "SignOf(%v)", tt.lon)
	}
}

func TestSigns_ElementsAndModalitiesCycle(t *testing.T) {
	t.Parallel()

	elements := []Element{Fire, Earth, Air, Water}
	modalities := []Modality{Cardinal, Fixed, Mutable}
	for i, s := range Signs() {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, elements[i%4], s.Element, s.Name)
		assert.Equal(t, modalities[i%3], s.Modality, s.Name)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10°22' Capricorn", Format(280.37))
	assert.Equal(t, "0°00' Aries", Format(0))
	assert.Equal(t, "29°59' Pisces", Format(359.999))
	assert.InDelta(t, 10.37, DegreeInSign(280.37), 1e-9)
}
