package dal

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var ErrMalformedStore = errors.New("malformed subscribers store")

// MalformedStoreError reports a persisted subscribers record that cannot be parsed.
type MalformedStoreError struct {
	Entry    string
	Position int
	Err      error
}

func (e *MalformedStoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: entry %d %q: %v", ErrMalformedStore, e.Position, e.Entry, e.Err)
	}
	return fmt.Sprintf("%s: entry %d %q", ErrMalformedStore, e.Position, e.Entry)
}

func (e *MalformedStoreError) Is(target error) bool {
	return target == ErrMalformedStore
}

func (e *MalformedStoreError) Unwrap() error {
	return e.Err
}

type ToggleAction string

const (
	Subscribed   ToggleAction = "subscribed"
	Unsubscribed ToggleAction = "unsubscribed"
)

// SubscriberSet is a set of chat IDs that receive problem digests.
type SubscriberSet map[int64]struct{}

func NewSubscriberSet(ids ...int64) SubscriberSet {
	res := make(SubscriberSet, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}

func (s SubscriberSet) Contains(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s SubscriberSet) Clone() SubscriberSet {
	res := make(SubscriberSet, len(s))
	for id := range s {
		res[id] = struct{}{}
	}
	return res
}

// IDs returns chat IDs in ascending order
func (s SubscriberSet) IDs() []int64 {
	res := make([]int64, 0, len(s))
	for id := range s {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// Toggle returns a copy of the set with id added when absent or removed when present.
// The receiver is not modified.
func (s SubscriberSet) Toggle(id int64) (SubscriberSet, ToggleAction) {
	res := s.Clone()
	if res.Contains(id) {
		delete(res, id)
		return res, Unsubscribed
	}
	res[id] = struct{}{}
	return res, Subscribed
}

// ParseSubscribers parses a comma separated list of chat IDs, e.g. "123,-100456,789".
func ParseSubscribers(raw string) (SubscriberSet, error) {
	res := make(SubscriberSet)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return res, nil
	}

	for i, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			return nil, &MalformedStoreError{Entry: entry, Position: i}
		}
		id, err := strconv.ParseInt(entry, 10, 64)
		if err != nil {
			return nil, &MalformedStoreError{Entry: entry, Position: i, Err: err}
		}
		res[id] = struct{}{}
	}

	return res, nil
}

func FormatSubscribers(s SubscriberSet) string {
	ids := s.IDs()
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
