package dal

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/site-monitor/internal/dal/migrations"
)

const (
	subscribersBucket = "subscribers"
	subscribersKey    = "chat_ids"
)

type BoltDB struct {
	db *bbolt.DB
}

// Open opens (or creates) the database file and brings its schema up to date.
func Open(path string, log *slog.Logger) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second}) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := migrations.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	res, err := NewBoltDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return res, nil
}

// NewBoltDB wraps an already migrated database.
func NewBoltDB(db *bbolt.DB) (*BoltDB, error) {
	err := db.View(func(tx *bbolt.Tx) error {
		for _, name := range []string{subscribersBucket, checksBucket} {
			if tx.Bucket([]byte(name)) == nil {
				return fmt.Errorf("bucket %q not found", name)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("verify buckets: %w", err)
	}

	return &BoltDB{db: db}, nil
}

func (s *BoltDB) LoadSubscribers() (SubscriberSet, error) {
	var raw string

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))
		if b == nil {
			return errors.New("subscribers bucket not found")
		}
		raw = string(b.Get([]byte(subscribersKey)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ParseSubscribers(raw)
}

func (s *BoltDB) SaveSubscribers(set SubscriberSet) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))
		if b == nil {
			return errors.New("subscribers bucket not found")
		}
		if err := b.Put([]byte(subscribersKey), []byte(FormatSubscribers(set))); err != nil {
			return fmt.Errorf("put subscribers: %w", err)
		}
		return nil
	})
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}
