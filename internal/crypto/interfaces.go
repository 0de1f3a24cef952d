package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks password hashes for the credential
// store.
//
// Hashes are hex-encoded scrypt keys. Salts are hex-encoded random bytes and
// the salt string itself, not its decoded bytes, is fed to scrypt, so the
// persisted user table stays readable by older deployments.
type PasswordHasher interface {
	// GenerateSalt returns a fresh hex-encoded random salt.
	GenerateSalt() (string, error)

	// Hash derives the hex-encoded key for password and salt.
	Hash(password, salt string) (string, error)

	// Verify reports whether password matches the stored salt and hash.
	// The comparison runs in constant time.
	Verify(password, salt, hash string) bool

	// VerifyUnknown spends the same work as Verify and always returns false.
	// Callers use it when the username does not exist.
	VerifyUnknown(password string) bool
}
