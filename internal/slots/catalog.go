// Package slots holds the office's fixed daily slot grid and the free/taken
// computation shared by courtroom bookings and lawyer appointments.
package slots

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyCatalog   = errors.New("slot catalog must not be empty")
	ErrDuplicateLabel = errors.New("slot catalog contains a duplicate label")
	ErrEmptyLabel     = errors.New("slot catalog contains an empty label")
)

// DateLayout canonical calendar-day encoding for reservation dates
const DateLayout = "2006-01-02"

// Catalog immutable, ordered list of the day's bookable time labels
type Catalog struct {
	labels []string
	index  map[string]int
}

// New builds a catalog, rejecting empty or repeated labels
func New(labels []string) (*Catalog, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		if strings.TrimSpace(l) == "" {
			return nil, ErrEmptyLabel
		}
		if _, dup := c.index[l]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, l)
		}
		c.labels[i] = l
		c.index[l] = i
	}
	return c, nil
}

// MustNew like New but panics; for package-level defaults and tests
func MustNew(labels []string) *Catalog {
	c, err := New(labels)
	if err != nil {
		panic(err)
	}
	return c
}

// Labels returns a copy of the labels in catalog order
func (c *Catalog) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// Len number of slots per day
func (c *Catalog) Len() int { return len(c.labels) }

// Contains reports whether label is a slot of this catalog
func (c *Catalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

// Index position of label in the catalog, or -1
func (c *Catalog) Index(label string) int {
	if i, ok := c.index[label]; ok {
		return i
	}
	return -1
}

// Less orders two labels by catalog position. Unknown labels sort after known
// ones and fall back to string order among themselves.
func (c *Catalog) Less(a, b string) bool {
	ia, ib := c.Index(a), c.Index(b)
	switch {
	case ia >= 0 && ib >= 0:
		return ia < ib
	case ia >= 0:
		return true
	case ib >= 0:
		return false
	default:
		return a < b
	}
}

// ── availability grid ──

// Status one slot of an availability answer
type Status struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Availability marks every catalog slot free unless its label is in taken.
// The result always has the catalog's cardinality and order.
func (c *Catalog) Availability(taken []string) []Status {
	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}
	out := make([]Status, len(c.labels))
	for i, l := range c.labels {
		_, isTaken := takenSet[l]
		out[i] = Status{Time: l, Available: !isTaken}
	}
	return out
}

// ── date/time helpers ──

// ParseDate validates a canonical YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not YYYY-MM-DD", s)
	}
	return d, nil
}

// StartOf resolves a (date, label) pair to an instant in loc.
// Labels use the "3:04 PM" clock format.
func StartOf(date, label string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	clock, err := time.Parse("3:04 PM", strings.TrimSpace(label))
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q is not a clock label", label)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}
