package v2

import (
	"fmt"

	"go.etcd.io/bbolt"
)

// MigrationV2 creates buckets for the subscribers list and the last check digest
type MigrationV2 struct{}

func New() *MigrationV2 {
	return &MigrationV2{}
}

func (m *MigrationV2) Version() int {
	return 2 //nolint:mnd // version 2
}

func (m *MigrationV2) Description() string {
	return "Create subscribers and checks buckets"
}

func (m *MigrationV2) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{"subscribers", "checks"} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
