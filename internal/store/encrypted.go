package store

import (
	"bytes"
	"fmt"

	"hangar-go/internal/hangar"
)

// EncryptedStore decorates another Store, encrypting snapshot blobs before
// they reach the backend and decrypting them on the way out. Keys stay in
// plaintext; only values are encrypted. Encryption stays orthogonal to the
// backend choice this way.
type EncryptedStore struct {
	inner hangar.Store
	enc   hangar.Encryptor
	dec   hangar.DecryptionContext
}

// NewEncryptedStore wraps inner with encryption. dec must be an unlocked
// decryption context for the session; writes need only the encryptor.
func NewEncryptedStore(inner hangar.Store, enc hangar.Encryptor, dec hangar.DecryptionContext) *EncryptedStore {
	return &EncryptedStore{inner: inner, enc: enc, dec: dec}
}

// Get reads the ciphertext blob from the backend and decrypts it. An absent
// key passes through as (nil, nil).
func (s *EncryptedStore) Get(key string) ([]byte, error) {
	ciphertext, err := s.inner.Get(key)
	if err != nil {
		return nil, err
	}
	if ciphertext == nil {
		return nil, nil
	}

	var plaintext bytes.Buffer
	if err := s.dec.Decrypt(bytes.NewReader(ciphertext), &plaintext); err != nil {
		return nil, fmt.Errorf("decrypting snapshot %s: %w", key, err)
	}
	return plaintext.Bytes(), nil
}

// Set encrypts data and writes the ciphertext to the backend.
func (s *EncryptedStore) Set(key string, data []byte) error {
	var ciphertext bytes.Buffer
	if err := s.enc.Encrypt(bytes.NewReader(data), &ciphertext); err != nil {
		return fmt.Errorf("encrypting snapshot %s: %w", key, err)
	}
	return s.inner.Set(key, ciphertext.Bytes())
}

// ValidateSetup checks the backend and that the key pair exists.
func (s *EncryptedStore) ValidateSetup() error {
	if !s.enc.IsConfigured() {
		return fmt.Errorf("encryption enabled but key pair is not configured")
	}
	return s.inner.ValidateSetup()
}

// Close releases the backend's resources, if it holds any.
func (s *EncryptedStore) Close() error {
	if c, ok := s.inner.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Compile-time check that EncryptedStore implements hangar.Store
var _ hangar.Store = (*EncryptedStore)(nil)
