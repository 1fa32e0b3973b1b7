package redis

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"
)

// DraftStore holds listing drafts between submission and payment
// confirmation, keyed by transaction reference. Drafts carry personal data
// (addresses, contact details), so they are encrypted at rest.
type DraftStore struct {
	encryptionKey []byte
}

var (
	setDraftValue = Set
	getDraftValue = Get
	delDraftValue = Del
)

// NewDraftStore creates a new draft store
func NewDraftStore(encryptionKeyHex string) (*DraftStore, error) {
	key, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		return nil, errors.New("invalid encryption key hex")
	}
	if len(key) != 32 {
		return nil, errors.New("encryption key must be 32 bytes (64 hex chars)")
	}
	return &DraftStore{encryptionKey: key}, nil
}

// Put stores an encrypted draft under the transaction reference
func (s *DraftStore) Put(ctx context.Context, txRef string, draft interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	encryptedData, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setDraftValue(ctx, "draft:"+txRef, encryptedData, expiration)
}

// Get retrieves and decrypts a draft into out
func (s *DraftStore) Get(ctx context.Context, txRef string, out interface{}) error {
	encryptedDataStr, err := getDraftValue(ctx, "draft:"+txRef)
	if err != nil {
		return err
	}

	decryptedData, err := s.decrypt(encryptedDataStr)
	if err != nil {
		return err
	}

	return json.Unmarshal(decryptedData, out)
}

// Delete removes a draft
func (s *DraftStore) Delete(ctx context.Context, txRef string) error {
	return delDraftValue(ctx, "draft:"+txRef)
}

func (s *DraftStore) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *DraftStore) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, data := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, data, nil)
}
