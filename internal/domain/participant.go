package domain

import (
	"fmt"
	"strings"
)

// Transportation answers recognized on the sign-up sheet. Matching is exact
// after trimming and lowercasing.
const (
	PhraseDriver        = "i can provide transportation for others"
	PhraseSelfTransport = "i have transportation for myself"
	PhraseRider         = "i need transportation provided"
)

// Category is how a participant gets to the event.
type Category int

const (
	CategoryUnrecognized Category = iota
	CategorySelfTransport
	CategoryDriver
	CategoryRider
)

// ParseCategory maps a transportation answer to its Category. Anything that is
// not one of the three recognized phrases is CategoryUnrecognized.
func ParseCategory(text string) Category {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case PhraseDriver:
		return CategoryDriver
	case PhraseSelfTransport:
		return CategorySelfTransport
	case PhraseRider:
		return CategoryRider
	default:
		return CategoryUnrecognized
	}
}

func (c Category) String() string {
	switch c {
	case CategorySelfTransport:
		return "self_transport"
	case CategoryDriver:
		return "driver"
	case CategoryRider:
		return "rider"
	case CategoryUnrecognized:
		return "unrecognized"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Participant is one classified row of the sign-up sheet.
// swagger:model Participant
type Participant struct {
	Name     string   `json:"name"`
	Category Category `json:"category" swaggertype:"string"`
	// SeatCapacity is only meaningful for drivers.
	SeatCapacity int `json:"seat_capacity,omitempty"`
}

// NewDriver returns a driver participant offering seats seats.
func NewDriver(name string, seats int) Participant {
	return Participant{Name: name, Category: CategoryDriver, SeatCapacity: seats}
}

// NewRider returns a participant who needs a ride.
func NewRider(name string) Participant {
	return Participant{Name: name, Category: CategoryRider}
}

// NewSelfTransport returns a participant who arranges their own travel.
func NewSelfTransport(name string) Participant {
	return Participant{Name: name, Category: CategorySelfTransport}
}

// Car is one driver and the riders assigned to them.
// len(Passengers) never exceeds Driver.SeatCapacity.
// swagger:model Car
type Car struct {
	Driver     Participant   `json:"driver"`
	Passengers []Participant `json:"passengers"`
}

// OpenSeats returns the number of unfilled seats.
func (c Car) OpenSeats() int {
	return max(0, c.Driver.SeatCapacity-len(c.Passengers))
}

// Assignment is the grouping produced for one run. The three groups are disjoint.
// swagger:model Assignment
type Assignment struct {
	SelfTransport []Participant `json:"self_transport"`
	Cars          []Car         `json:"cars"`
	Waitlist      []Participant `json:"waitlist"`
}

// PlacedCount is the number of admitted people: self-transport participants,
// drivers and their passengers.
func (a Assignment) PlacedCount() int {
	n := len(a.SelfTransport)
	for _, car := range a.Cars {
		n += 1 + len(car.Passengers)
	}
	return n
}
