package ledger

import (
	"os"
	"path/filepath"

	"github.com/go-redis/redis"
)

// Store is the persistence port behind the ledger: a key-value blob store
// with best-effort semantics. A missing key is (nil, nil), not an error, so
// the ledger can fall back to an empty container.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileStore keeps one JSON file per logical key under a directory. Writes
// are fire-and-forget: there is no fsync and no rollback.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (s *FileStore) Set(key string, value []byte) error {
	return os.WriteFile(s.path(key), value, 0o600)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// RedisStore backs the ledger with a redis hash-free key space, for clients
// that already carry a redis connection and want the ledger to survive
// process restarts on another host.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStore(rdb *redis.Client, prefix string) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: prefix}
}

func (s *RedisStore) Get(key string) ([]byte, error) {
	data, err := s.rdb.Get(s.prefix + key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (s *RedisStore) Set(key string, value []byte) error {
	return s.rdb.Set(s.prefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.rdb.Del(s.prefix + key).Err()
}
