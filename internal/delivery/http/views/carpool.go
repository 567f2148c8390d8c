// Package views turns assignment results into page descriptions and renders them.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"carpoolreminders/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/carpools.html"))

// Page describes everything shown for one assignment result.
type Page struct {
	Title    string
	Summary  []Stat
	Sections []Section
}

// Stat is a labelled count in the page summary.
type Stat struct {
	Label string
	Value int
}

// Section is a titled block of groups.
type Section struct {
	ID     string
	Title  string
	Groups []Group
}

// Group is a list of names, optionally under a heading (a car's driver).
type Group struct {
	Heading string
	Items   []string
	// Empty is shown instead of Items when there are none.
	Empty string
}

// Build describes the page for a. It has no side effects.
func Build(a domain.Assignment, capacity int) Page {
	passengers := 0
	for _, car := range a.Cars {
		passengers += len(car.Passengers)
	}

	cars := make([]Group, 0, len(a.Cars))
	for _, car := range a.Cars {
		cars = append(cars, Group{
			Heading: fmt.Sprintf("%s (%d %s)", car.Driver.Name, car.Driver.SeatCapacity, plural(car.Driver.SeatCapacity, "seat", "seats")),
			Items:   participantNames(car.Passengers),
			Empty:   "No passengers",
		})
	}
	if len(cars) == 0 {
		cars = append(cars, Group{Empty: "No cars"})
	}

	return Page{
		Title: "Carpool groups",
		Summary: []Stat{
			{Label: "Capacity", Value: capacity},
			{Label: "Placed", Value: a.PlacedCount()},
			{Label: "Self-transport", Value: len(a.SelfTransport)},
			{Label: "Cars", Value: len(a.Cars)},
			{Label: "Passengers", Value: passengers},
			{Label: "Waitlist", Value: len(a.Waitlist)},
		},
		Sections: []Section{
			{
				ID:     "self-transport",
				Title:  "Self-transport",
				Groups: []Group{{Items: participantNames(a.SelfTransport), Empty: "Nobody"}},
			},
			{ID: "cars", Title: "Cars", Groups: cars},
			{
				ID:     "waitlist",
				Title:  "Waitlist",
				Groups: []Group{{Items: participantNames(a.Waitlist), Empty: "Nobody"}},
			},
		},
	}
}

// Render writes page as HTML.
func Render(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}

func participantNames(ps []domain.Participant) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
