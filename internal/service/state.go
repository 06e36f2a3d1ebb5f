package service

import (
	"sync"
	"time"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

// State is shared between the check loop (writer) and command handlers (readers).
// Digests are never modified after they are built, so they are handed out as is.
type State struct {
	mx sync.RWMutex

	lastCheck    dal.Digest
	hasLastCheck bool
	lastCycleAt  time.Time
	subscribers  dal.SubscriberSet
}

func NewState() *State {
	return &State{subscribers: dal.NewSubscriberSet()}
}

func (s *State) LastCheck() (dal.Digest, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.lastCheck, s.hasLastCheck
}

func (s *State) SetLastCheck(d dal.Digest) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.lastCheck = d
	s.hasLastCheck = true
}

func (s *State) LastCycleAt() time.Time {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.lastCycleAt
}

func (s *State) SetLastCycleAt(t time.Time) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.lastCycleAt = t
}

// Subscribers returns a copy of the last successfully loaded set
func (s *State) Subscribers() dal.SubscriberSet {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.subscribers.Clone()
}

func (s *State) SetSubscribers(set dal.SubscriberSet) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.subscribers = set.Clone()
}
