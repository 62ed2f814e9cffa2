package client

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// Store keys used by the test client.
const (
	StoreKeyToken   = "deepfind_token"
	StoreKeyProfile = "deepfind_user"
)

// CredentialStore is a small string KV persisted to a JSON file, standing in
// for browser local storage. Every mutation writes through to disk.
type CredentialStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

// OpenCredentialStore loads the store at path, starting empty when the file
// does not exist yet.
func OpenCredentialStore(path string) (*CredentialStore, error) {
	store := &CredentialStore{
		path:   path,
		values: map[string]string{},
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, err
	}

	if err := sonic.Unmarshal(raw, &store.values); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *CredentialStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	return value, ok
}

func (s *CredentialStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.persist()
}

func (s *CredentialStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return s.persist()
}

// SetJSON serializes v and stores it under key.
func (s *CredentialStore) SetJSON(key string, v interface{}) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(key, string(raw))
}

// GetJSON reads key and deserializes it into out. Returns false when the key
// is absent.
func (s *CredentialStore) GetJSON(key string, out interface{}) (bool, error) {
	raw, ok := s.Get(key)
	if !ok {
		return false, nil
	}
	return true, sonic.Unmarshal([]byte(raw), out)
}

func (s *CredentialStore) persist() error {
	raw, err := sonic.Marshal(s.values)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.path, raw, 0o600)
}
