// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher turns a plaintext password into a self-contained stored
// credential and checks candidates against it.
type CredentialHasher interface {
	// Encode derives a credential from password with a fresh random salt.
	// Two calls with the same password never return the same string.
	Encode(password string) (string, error)

	// Verify reports whether password matches credential.
	// A credential that cannot be parsed yields domainerrors.ErrMalformedCredential,
	// never a plain false.
	Verify(password, credential string) (bool, error)
}
