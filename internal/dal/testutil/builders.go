package testutil

import (
	"net/http"
	"time"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

// OutcomeBuilder provides fluent API for building probe outcomes
type OutcomeBuilder struct {
	o dal.Outcome
}

// NewOutcome creates a healthy outcome for url
func NewOutcome(url string) *OutcomeBuilder {
	return &OutcomeBuilder{
		o: dal.Outcome{
			URL:    url,
			Status: dal.Healthy,
			Code:   http.StatusOK,
		},
	}
}

func (b *OutcomeBuilder) WithCode(code int) *OutcomeBuilder {
	b.o.Code = code
	if code == http.StatusOK {
		b.o.Status = dal.Healthy
	} else {
		b.o.Status = dal.Unhealthy
	}
	return b
}

func (b *OutcomeBuilder) Unreachable(cause string) *OutcomeBuilder {
	b.o.Status = dal.Unreachable
	b.o.Code = 0
	b.o.Cause = cause
	return b
}

func (b *OutcomeBuilder) WithCheckedAt(t time.Time) *OutcomeBuilder {
	b.o.CheckedAt = t
	return b
}

func (b *OutcomeBuilder) Build() dal.Outcome {
	return b.o
}

// DigestBuilder provides fluent API for building digests
type DigestBuilder struct {
	d dal.Digest
}

func NewDigest(checkedAt time.Time) *DigestBuilder {
	return &DigestBuilder{d: dal.Digest{CheckedAt: checkedAt}}
}

// WithOutcomes routes each outcome into problems or successful by its status
func (b *DigestBuilder) WithOutcomes(outcomes ...dal.Outcome) *DigestBuilder {
	for _, o := range outcomes {
		if o.Healthy() {
			b.d.Successful = append(b.d.Successful, o)
		} else {
			b.d.Problems = append(b.d.Problems, o)
		}
	}
	return b
}

func (b *DigestBuilder) Build() dal.Digest {
	return b.d
}
