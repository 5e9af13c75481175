package auth

import (
	"encoding/json"
	"os"
)

// TokenStore persists a single Credential as JSON. It assumes one process at a time.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store backed by the file at path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Path returns the backing file path.
func (s *TokenStore) Path() string {
	return s.path
}

// Load reads the cached credential. A missing file is reported with an error satisfying
// errors.Is(err, os.ErrNotExist). The requested scopes replace any scopes in the file.
func (s *TokenStore) Load(scopes []string) (*Credential, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	cred := &Credential{}
	if err := json.Unmarshal(data, cred); err != nil {
		return nil, err
	}
	if len(scopes) > 0 {
		cred.Scopes = append([]string(nil), scopes...)
	}
	return cred, nil
}

// Save overwrites the cache file with cred.
func (s *TokenStore) Save(cred *Credential) error {
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
