package auth

import (
	"crypto/sha512"
	"encoding/base64"
	"strings"
	"testing"

	"registry/config"
	domainerrors "registry/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

// Low iteration count keeps the suite fast; the format and comparison logic are unchanged.
const testIterations = 1_000

func newTestHasher() *pbkdf2Hasher {
	return NewPBKDF2HasherWithParams(testIterations, DefaultKeySize).(*pbkdf2Hasher)
}

func TestPBKDF2Hasher_Encode(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123!"
	credential, err := hasher.Encode(password)
	require.NoError(t, err)
	assert.NotEmpty(t, credential)
	assert.NotContains(t, credential, password)

	fields := strings.Split(credential, ";")
	require.Len(t, fields, 2)

	salt, err := base64.StdEncoding.DecodeString(fields[0])
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	key, err := base64.StdEncoding.DecodeString(fields[1])
	require.NoError(t, err)
	assert.Len(t, key, DefaultKeySize)

	// The stored key is exactly PBKDF2-HMAC-SHA512 over the stored salt.
	assert.Equal(t, pbkdf2.Key([]byte(password), salt, testIterations, DefaultKeySize, sha512.New), key)
}

func TestPBKDF2Hasher_EncodeIsSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Encode("p1")
	require.NoError(t, err)
	second, err := hasher.Encode("p1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPBKDF2Hasher_Verify(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123!"

	credential, err := hasher.Encode(password)
	require.NoError(t, err)

	ok, err := hasher.Verify(password, credential)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("WrongPassword123!", credential)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify("", credential)
	require.NoError(t, err)
	assert.False(t, ok)

	// Verification is deterministic for the same stored string.
	ok, err = hasher.Verify(password, credential)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPBKDF2Hasher_EmptyPassword(t *testing.T) {
	hasher := newTestHasher()

	credential, err := hasher.Encode("")
	require.NoError(t, err)

	ok, err := hasher.Verify("", credential)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify(" ", credential)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_UnicodePassword(t *testing.T) {
	hasher := newTestHasher()

	credential, err := hasher.Encode("Pässphräse123!")
	require.NoError(t, err)

	ok, err := hasher.Verify("Pässphräse123!", credential)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("Passphrase123!", credential)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_MalformedCredential(t *testing.T) {
	hasher := newTestHasher()
	valid := base64.StdEncoding.EncodeToString([]byte("salt"))

	testCases := []struct {
		name       string
		credential string
	}{
		{"empty", ""},
		{"no separator", valid},
		{"too many fields", valid + ";" + valid + ";" + valid},
		{"empty salt", ";" + valid},
		{"empty key", valid + ";"},
		{"invalid salt", "!!!;" + valid},
		{"invalid key", valid + ";not base64"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := hasher.Verify("password", tc.credential)
			require.Error(t, err)
			assert.False(t, ok)
			assert.True(t, errors.Is(err, domainerrors.ErrMalformedCredential))
		})
	}
}

func TestPBKDF2Hasher_IterationsMustMatch(t *testing.T) {
	credential, err := NewPBKDF2HasherWithParams(testIterations, DefaultKeySize).Encode("secret")
	require.NoError(t, err)

	ok, err := NewPBKDF2HasherWithParams(testIterations+1, DefaultKeySize).Verify("secret", credential)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_VerifiesStoredKeyLength(t *testing.T) {
	credential, err := NewPBKDF2HasherWithParams(testIterations, 32).Encode("secret")
	require.NoError(t, err)

	// A hasher configured for a different key size still checks older credentials.
	ok, err := NewPBKDF2HasherWithParams(testIterations, DefaultKeySize).Verify("secret", credential)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewPBKDF2Hasher_Config(t *testing.T) {
	hasher := NewPBKDF2Hasher(&config.Config{}).(*pbkdf2Hasher)
	assert.Equal(t, DefaultIterations, hasher.iterations)
	assert.Equal(t, DefaultKeySize, hasher.keySize)

	hasher = NewPBKDF2Hasher(&config.Config{
		Credential: &config.CredentialConfig{Iterations: 5_000, KeySize: 32},
	}).(*pbkdf2Hasher)
	assert.Equal(t, 5_000, hasher.iterations)
	assert.Equal(t, 32, hasher.keySize)
}

func TestPBKDF2Hasher_DefaultParameters(t *testing.T) {
	hasher := NewPBKDF2Hasher(nil)

	credential, err := hasher.Encode("p1")
	require.NoError(t, err)

	ok, err := hasher.Verify("p1", credential)
	require.NoError(t, err)
	assert.True(t, ok)
}
