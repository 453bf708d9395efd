package domain

// Pulse is RescueTime's daily productivity pulse. Only Color is rendered.
type Pulse struct {
	Score float64
	Color string // hex, e.g. #27ae60; empty when unknown
}
