package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Roma7-7-7/site-monitor/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . SubscribersStore

type SubscribersStore interface {
	LoadSubscribers() (dal.SubscriberSet, error)
	SaveSubscribers(s dal.SubscriberSet) error
}

// Subscriptions serializes every access to the subscribers store, so a toggle
// never races with the check cycle reading the same file.
type Subscriptions struct {
	store SubscribersStore
	state *State

	log *slog.Logger
	mx  *sync.Mutex
}

func NewSubscriptions(store SubscribersStore, state *State, log *slog.Logger) *Subscriptions {
	return &Subscriptions{
		store: store,
		state: state,
		log:   log.With("component", "service").With("service", "subscriptions"),
		mx:    &sync.Mutex{},
	}
}

// Load reads subscribers fresh from the store and remembers them as the last known set
func (s *Subscriptions) Load() (dal.SubscriberSet, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	set, err := s.load()
	if err != nil {
		return nil, err
	}
	return set.Clone(), nil
}

func (s *Subscriptions) IsSubscribed(chatID int64) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	set, err := s.load()
	if err != nil {
		return false, err
	}
	return set.Contains(chatID), nil
}

func (s *Subscriptions) Toggle(chatID int64) (dal.ToggleAction, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	set, err := s.load()
	if err != nil {
		return "", err
	}

	next, action := set.Toggle(chatID)
	if err := s.save(next); err != nil {
		return "", err
	}

	s.log.Info("subscription toggled", "chatID", chatID, "action", action, "subscribers", len(next))
	return action, nil
}

// Remove drops chatID if present. Used for chats that blocked the bot.
func (s *Subscriptions) Remove(chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	set, err := s.load()
	if err != nil {
		return err
	}
	if !set.Contains(chatID) {
		return nil
	}

	next, _ := set.Toggle(chatID)
	if err := s.save(next); err != nil {
		return err
	}

	s.log.Info("subscriber removed", "chatID", chatID, "subscribers", len(next))
	return nil
}

func (s *Subscriptions) load() (dal.SubscriberSet, error) {
	set, err := s.store.LoadSubscribers()
	if err != nil {
		return nil, &StoreError{Op: "load subscribers", Err: err}
	}
	s.state.SetSubscribers(set)
	return set, nil
}

func (s *Subscriptions) save(set dal.SubscriberSet) error {
	if err := s.store.SaveSubscribers(set); err != nil {
		return &StoreError{Op: "save subscribers", Err: fmt.Errorf("%d subscribers: %w", len(set), err)}
	}
	s.state.SetSubscribers(set)
	return nil
}
