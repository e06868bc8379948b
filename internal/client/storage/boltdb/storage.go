// Package boltdb реализует локальный кэш клиента на bbolt.
package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/spawnsync/internal/client/storage"
)

// cacheFormat версия формата значений кэша.
// При несовпадении кэш снимков сбрасывается: он всегда восстанавливается с сервера.
const cacheFormat uint64 = 1

// openTimeout ожидание файловой блокировки, если кэш открыт другим процессом
const openTimeout = time.Second

var (
	bucketAuth      = []byte("auth")
	bucketSnapshots = []byte("snapshots")
	bucketMetadata  = []byte("metadata")

	keyCacheFormat = []byte("cache_format")
)

// ErrBucketNotFound бакет отсутствует в файле кэша
var ErrBucketNotFound = errors.New("bucket not found")

// Storage локальный кэш: токен, метаданные узла и последние снимки карт
type Storage struct {
	db *bbolt.DB
}

// New открывает (или создает) кэш по пути dbPath
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, fmt.Errorf("cache %s is in use by another process", dbPath)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}
	if err := s.db.Update(prepare); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	return s, nil
}

// Close closes the database; repeated calls are no-ops
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// prepare создает бакеты и сбрасывает снимки устаревшего формата
func prepare(tx *bbolt.Tx) error {
	for _, name := range [][]byte{bucketAuth, bucketSnapshots, bucketMetadata} {
		if _, err := tx.CreateBucketIfNotExists(name); err != nil {
			return fmt.Errorf("failed to create %s bucket: %w", name, err)
		}
	}

	meta := tx.Bucket(bucketMetadata)
	if format, ok := getUint(meta, keyCacheFormat); ok && format == cacheFormat {
		return nil
	}

	if err := tx.DeleteBucket(bucketSnapshots); err != nil {
		return fmt.Errorf("failed to reset snapshots bucket: %w", err)
	}
	if _, err := tx.CreateBucket(bucketSnapshots); err != nil {
		return fmt.Errorf("failed to create snapshots bucket: %w", err)
	}
	return putUint(meta, keyCacheFormat, cacheFormat)
}

// view выполняет fn в read-only транзакции над бакетом name
func (s *Storage) view(name []byte, fn func(b *bbolt.Bucket) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(name)
		if b == nil {
			return fmt.Errorf("%s: %w", name, ErrBucketNotFound)
		}
		return fn(b)
	})
}

// update выполняет fn в транзакции записи над бакетом name
func (s *Storage) update(name []byte, fn func(b *bbolt.Bucket) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(name)
		if b == nil {
			return fmt.Errorf("%s: %w", name, ErrBucketNotFound)
		}
		return fn(b)
	})
}

func putJSON(b *bbolt.Bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return b.Put(key, data)
}

// getJSON возвращает false, если ключа нет
func getJSON(b *bbolt.Bucket, key []byte, v any) (bool, error) {
	data := b.Get(key)
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func putUint(b *bbolt.Bucket, key []byte, v uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return b.Put(key, buf)
}

func getUint(b *bbolt.Bucket, key []byte) (uint64, bool) {
	data := b.Get(key)
	if len(data) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(data), true
}
