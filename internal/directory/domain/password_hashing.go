package domain

// PasswordHasher turns plaintext credentials into the stored password hash of
// a directory record. Synced records arrive pre-hashed and bypass it.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hashedPassword string) (bool, error)
}
