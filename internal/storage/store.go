// ABOUTME: Local read cache for readings and daily totals on BadgerDB.
// ABOUTME: Prefixed keys with JSON values; supports day snapshots for optimistic rollback.
package storage

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/harperreed/stride/internal/models"
)

const (
	readingPrefix = "reading:"
	totalPrefix   = "total:"
)

// ErrNotFound is returned when a key has no cached value.
var ErrNotFound = fmt.Errorf("not found")

// Store is a local cache of the remote row store. It lets the UI render
// immediately after an update and be rolled back if persistence fails.
type Store struct {
	db *badger.DB
}

// Open opens or creates the cache database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func readingKey(userID, date string, metricType models.MetricType) []byte {
	return []byte(fmt.Sprintf("%s%s:%s:%s", readingPrefix, userID, date, metricType))
}

func dayReadingPrefix(userID, date string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s:", readingPrefix, userID, date))
}

func totalKey(userID, date string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", totalPrefix, userID, date))
}

// PutReading caches a reading, overwriting any previous value for the
// same (user, date, metric type).
func (s *Store) PutReading(r *models.MetricReading) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(readingKey(r.UserID, r.Date, r.MetricType), data)
	})
}

// ReadingsForDay returns all cached readings for (user, date).
func (s *Store) ReadingsForDay(userID, date string) ([]*models.MetricReading, error) {
	var readings []*models.MetricReading
	prefix := dayReadingPrefix(userID, date)

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			data, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			var r models.MetricReading
			if err := json.Unmarshal(data, &r); err != nil {
				return fmt.Errorf("unmarshal reading: %w", err)
			}
			readings = append(readings, &r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return readings, nil
}

// PutDailyTotal caches a daily total, overwriting any previous value.
func (s *Store) PutDailyTotal(t models.DailyTotal) error {
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal daily total: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(totalKey(t.UserID, t.Date), data)
	})
}

// DailyTotal returns the cached total for (user, date), or ErrNotFound.
func (s *Store) DailyTotal(userID, date string) (*models.DailyTotal, error) {
	var total models.DailyTotal

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(totalKey(userID, date))
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, &total)
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &total, nil
}

// DaySnapshot captures the exact cached state of one (user, date) so a
// failed optimistic update can be rolled back byte-for-byte.
type DaySnapshot struct {
	userID string
	date   string
	rows   map[string][]byte
}

// SnapshotDay captures all cached rows for (user, date).
func (s *Store) SnapshotDay(userID, date string) (*DaySnapshot, error) {
	snap := &DaySnapshot{
		userID: userID,
		date:   date,
		rows:   make(map[string][]byte),
	}

	err := s.db.View(func(txn *badger.Txn) error {
		for _, prefix := range s.dayPrefixes(userID, date) {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				item := it.Item()
				data, err := item.ValueCopy(nil)
				if err != nil {
					it.Close()
					return err
				}
				snap.rows[string(item.KeyCopy(nil))] = data
			}
			it.Close()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// RestoreDay replaces all cached rows for the snapshot's day with the
// snapshot contents, deleting rows that did not exist when it was taken.
func (s *Store) RestoreDay(snap *DaySnapshot) error {
	return s.db.Update(func(txn *badger.Txn) error {
		// Drop everything currently cached for the day.
		var stale [][]byte
		for _, prefix := range s.dayPrefixes(snap.userID, snap.date) {
			it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})
			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				stale = append(stale, it.Item().KeyCopy(nil))
			}
			it.Close()
		}
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}

		for key, data := range snap.rows {
			if err := txn.Set([]byte(key), data); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) dayPrefixes(userID, date string) [][]byte {
	return [][]byte{
		dayReadingPrefix(userID, date),
		totalKey(userID, date),
	}
}
