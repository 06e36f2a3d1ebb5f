package dal

import (
	"net/http"
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_GetLastCheck_NotFound() {
	_, ok, err := s.store.GetLastCheck()
	s.Require().NoError(err)
	s.False(ok)
}

func (s *BoltDBTestSuite) TestBoltDB_PutLastCheck() {
	checkedAt := time.Date(2025, time.November, 20, 17, 7, 0, 0, time.UTC)
	first := Digest{
		CheckedAt: checkedAt,
		Problems: []Outcome{
			{URL: "https://b.test", Status: Unhealthy, Code: http.StatusServiceUnavailable, CheckedAt: checkedAt},
			{URL: "https://c.test", Status: Unreachable, Cause: "dial tcp: no such host", CheckedAt: checkedAt},
		},
		Successful: []Outcome{
			{URL: "https://a.test", Status: Healthy, Code: http.StatusOK, Latency: 150 * time.Millisecond, CheckedAt: checkedAt},
		},
	}
	s.Require().NoError(s.store.PutLastCheck(first))

	actual, ok, err := s.store.GetLastCheck()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.True(first.CheckedAt.Equal(actual.CheckedAt))
	s.Equal(first.Problems[0].URL, actual.Problems[0].URL)
	s.Equal(first.Problems[1].Cause, actual.Problems[1].Cause)
	s.Equal(first.Successful[0].Latency, actual.Successful[0].Latency)

	second := Digest{
		CheckedAt:  checkedAt.Add(time.Hour),
		Successful: []Outcome{{URL: "https://a.test", Status: Healthy, Code: http.StatusOK}},
	}
	s.Require().NoError(s.store.PutLastCheck(second))

	actual, ok, err = s.store.GetLastCheck()
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Empty(actual.Problems)
	s.Len(actual.Successful, 1)
	s.True(second.CheckedAt.Equal(actual.CheckedAt))
}
