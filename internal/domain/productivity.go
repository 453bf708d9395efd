package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidProductivity is returned for scores outside [-2, 2].
var ErrInvalidProductivity = errors.New("invalid productivity score")

// Productivity is RescueTime's five-level activity classification.
type Productivity int

const (
	VeryDistracting Productivity = -2
	Distracting     Productivity = -1
	Neutral         Productivity = 0
	Productive      Productivity = 1
	VeryProductive  Productivity = 2
)

var productivityColors = map[Productivity]string{
	VeryProductive:  "#27ae60",
	Productive:      "#2ecc71",
	Neutral:         "#3498db",
	Distracting:     "#e67e22",
	VeryDistracting: "#e74c3c",
}

// ParseProductivity validates a raw API score.
func ParseProductivity(score int64) (Productivity, error) {
	p := Productivity(score)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidProductivity, score)
	}
	return p, nil
}

func (p Productivity) Valid() bool {
	return p >= VeryDistracting && p <= VeryProductive
}

// Color returns the hex colour used to render p.
func (p Productivity) Color() (string, error) {
	c, ok := productivityColors[p]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrInvalidProductivity, int(p))
	}
	return c, nil
}

func (p Productivity) String() string {
	switch p {
	case VeryProductive:
		return "very productive"
	case Productive:
		return "productive"
	case Neutral:
		return "neutral"
	case Distracting:
		return "distracting"
	case VeryDistracting:
		return "very distracting"
	}
	return fmt.Sprintf("productivity(%d)", int(p))
}
