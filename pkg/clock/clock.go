package clock

import (
	"fmt"
	"time"
	_ "time/tzdata" // containers often ship without zoneinfo
)

// Clock reports current time in a fixed location
type Clock struct {
	loc *time.Location
}

func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.Local
	}
	return &Clock{loc: loc}
}

// NewInZone loads an IANA time zone, e.g. "Europe/Moscow"
func NewInZone(name string) (*Clock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", name, err)
	}
	return New(loc), nil
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

type Mock struct {
	value time.Time
}

func NewMock(value time.Time) *Mock {
	return &Mock{value: value}
}

func (m *Mock) Now() time.Time {
	return m.value
}

func (m *Mock) Location() *time.Location {
	return m.value.Location()
}

func (m *Mock) Set(t time.Time) {
	m.value = t
}

func (m *Mock) Advance(d time.Duration) {
	m.value = m.value.Add(d)
}
