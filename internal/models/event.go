package models

import "time"

type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionUnknown  Direction = "unknown"
)

// Valid reports whether d is one of the two badge directions.
func (d Direction) Valid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

func (d Direction) String() string {
	switch d {
	case DirectionIncoming:
		return "Incoming"
	case DirectionOutgoing:
		return "Outgoing"
	default:
		return "Unknown"
	}
}

// ClockEvent is a single badge swipe read from the clockings file.
type ClockEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Direction   Direction `json:"direction"`
	Description string    `json:"description"`
}

// Date returns the calendar day of the event at midnight in the event's location.
func (e ClockEvent) Date() time.Time {
	y, m, d := e.Timestamp.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Timestamp.Location())
}
