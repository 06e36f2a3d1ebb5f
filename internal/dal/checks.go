package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	checksBucket = "checks"
	lastCheckKey = "last"
)

type Status string

const (
	Healthy     Status = "healthy"
	Unhealthy   Status = "unhealthy"
	Unreachable Status = "unreachable"
)

type (
	// Outcome is a result of probing one endpoint during one cycle.
	Outcome struct {
		URL       string        `json:"url"`
		Status    Status        `json:"status"`
		Code      int           `json:"code,omitempty"`
		Cause     string        `json:"cause,omitempty"`
		Latency   time.Duration `json:"latency"`
		CheckedAt time.Time     `json:"checked_at"`
	}

	// Digest is a summary of one cycle. Problems and Successful keep endpoint order.
	Digest struct {
		CheckedAt  time.Time `json:"checked_at"`
		Problems   []Outcome `json:"problems"`
		Successful []Outcome `json:"successful"`
	}
)

func (o Outcome) Healthy() bool {
	return o.Status == Healthy
}

// Failure returns nil for healthy outcomes
func (o Outcome) Failure() *ProbeFailure {
	if o.Healthy() {
		return nil
	}
	return &ProbeFailure{URL: o.URL, Status: o.Status, Code: o.Code, Cause: o.Cause}
}

// ProbeFailure describes an endpoint that did not answer 200 OK.
type ProbeFailure struct {
	URL    string
	Status Status
	Code   int
	Cause  string
}

func (f *ProbeFailure) Error() string {
	if f.Status == Unreachable {
		return fmt.Sprintf("%s unreachable: %s", f.URL, f.Cause)
	}
	return fmt.Sprintf("%s responded with status %d", f.URL, f.Code)
}

func (d Digest) Empty() bool {
	return d.CheckedAt.IsZero() && len(d.Problems) == 0 && len(d.Successful) == 0
}

func (d Digest) HasProblems() bool {
	return len(d.Problems) > 0
}

func (d Digest) Len() int {
	return len(d.Problems) + len(d.Successful)
}

func (s *BoltDB) GetLastCheck() (Digest, bool, error) {
	var res Digest
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(checksBucket))
		if b == nil {
			return errors.New("checks bucket not found")
		}
		data := b.Get([]byte(lastCheckKey))
		if data == nil {
			return nil
		}
		found = true
		if err := json.Unmarshal(data, &res); err != nil {
			return fmt.Errorf("unmarshal last check: %w", err)
		}
		return nil
	})

	return res, found, err
}

// PutLastCheck overwrites the previous digest, only the most recent one is kept
func (s *BoltDB) PutLastCheck(d Digest) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshal last check: %w", err)
		}
		b := tx.Bucket([]byte(checksBucket))
		if b == nil {
			return errors.New("checks bucket not found")
		}
		return b.Put([]byte(lastCheckKey), data)
	})
}
