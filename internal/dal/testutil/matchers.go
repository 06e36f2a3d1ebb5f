package testutil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

func AssertErrorIsAndContains(wantErr error, contains string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		return assert.Error(t, err, i...) && assert.ErrorIs(t, err, wantErr) && assert.ErrorContains(t, err, contains)
	}
}

// DigestMatcher compares digests ignoring probe latencies
type DigestMatcher struct {
	t    *testing.T
	want dal.Digest
}

func NewDigestMatcher(t *testing.T, want dal.Digest) *DigestMatcher {
	return &DigestMatcher{
		t:    t,
		want: want,
	}
}

func (m DigestMatcher) Matches(x interface{}) bool {
	actual, ok := x.(dal.Digest)
	if !ok {
		m.t.Fatalf("DigestMatcher.Matches: expected dal.Digest, got %T", x)
		return false
	}

	return assert.Equal(m.t, stripLatency(m.want), stripLatency(actual))
}

func (m DigestMatcher) String() string {
	return fmt.Sprintf("DigestMatcher.Matches(%d problems, %d successful)", len(m.want.Problems), len(m.want.Successful))
}

func stripLatency(d dal.Digest) dal.Digest {
	res := dal.Digest{CheckedAt: d.CheckedAt}
	for _, o := range d.Problems {
		o.Latency = 0
		res.Problems = append(res.Problems, o)
	}
	for _, o := range d.Successful {
		o.Latency = 0
		res.Successful = append(res.Successful, o)
	}
	return res
}
