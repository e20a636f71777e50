// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"registry/config"
	domainerrors "registry/internal/domain/errors"
	"registry/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultIterations is the PBKDF2 round count applied to every password.
	DefaultIterations = 100_000
	// DefaultKeySize is the derived key length in bytes.
	DefaultKeySize = 64
	// SaltSize is the random salt length in bytes.
	SaltSize = 64

	fieldSeparator = ";"
)

// pbkdf2Hasher implements CredentialHasher with PBKDF2-HMAC-SHA512.
// The stored form is base64(salt) + ";" + base64(key).
type pbkdf2Hasher struct {
	iterations int
	keySize    int
}

// NewPBKDF2Hasher is the constructor used by Fx. Zero or missing values in
// the credential config fall back to the defaults.
func NewPBKDF2Hasher(cfg *config.Config) service.CredentialHasher {
	iterations, keySize := DefaultIterations, DefaultKeySize
	if cfg != nil && cfg.Credential != nil {
		if cfg.Credential.Iterations > 0 {
			iterations = cfg.Credential.Iterations
		}
		if cfg.Credential.KeySize > 0 {
			keySize = cfg.Credential.KeySize
		}
	}

	return NewPBKDF2HasherWithParams(iterations, keySize)
}

// NewPBKDF2HasherWithParams creates a hasher with explicit parameters.
// Credentials only verify under the iteration count they were encoded with.
func NewPBKDF2HasherWithParams(iterations, keySize int) service.CredentialHasher {
	return &pbkdf2Hasher{
		iterations: iterations,
		keySize:    keySize,
	}
}

// Encode salts and stretches password.
func (h *pbkdf2Hasher) Encode(password string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	key := h.derive(password, salt, h.keySize)

	return base64.StdEncoding.EncodeToString(salt) + fieldSeparator + base64.StdEncoding.EncodeToString(key), nil
}

// Verify re-derives the key with the stored salt and compares it in constant time.
func (h *pbkdf2Hasher) Verify(password, credential string) (bool, error) {
	salt, key, err := splitCredential(credential)
	if err != nil {
		return false, err
	}

	actual := h.derive(password, salt, len(key))

	return subtle.ConstantTimeCompare(key, actual) == 1, nil
}

func (h *pbkdf2Hasher) derive(password string, salt []byte, keySize int) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, keySize, sha512.New)
}

func splitCredential(credential string) (salt, key []byte, err error) {
	fields := strings.Split(credential, fieldSeparator)
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return nil, nil, domainerrors.ErrMalformedCredential.WrapMessage("credential must have exactly two fields")
	}

	salt, err = base64.StdEncoding.DecodeString(fields[0])
	if err != nil {
		return nil, nil, domainerrors.ErrMalformedCredential.WrapMessage("salt is not valid base64")
	}

	key, err = base64.StdEncoding.DecodeString(fields[1])
	if err != nil {
		return nil, nil, domainerrors.ErrMalformedCredential.WrapMessage("key is not valid base64")
	}

	return salt, key, nil
}
