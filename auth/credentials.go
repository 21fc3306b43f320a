package auth

import "golang.org/x/crypto/bcrypt"

// Staff is one administrative identity. Only the bcrypt hash of the password
// is ever held in memory.
type Staff struct {
	Username     string
	PasswordHash []byte
}

// CredentialStore resolves usernames to staff identities. The deployment
// ships a single fixed admin, but token verification and login only depend
// on this interface, so a multi-user backend can be swapped in later.
type CredentialStore interface {
	Lookup(username string) (*Staff, bool)
}

// StaticCredentials is an in-memory CredentialStore.
type StaticCredentials struct {
	staff []Staff
}

// NewStaticCredentials hashes the given password and returns a store holding
// that one identity.
func NewStaticCredentials(username, password string) (*StaticCredentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticCredentials{staff: []Staff{{Username: username, PasswordHash: hash}}}, nil
}

func (s *StaticCredentials) Lookup(username string) (*Staff, bool) {
	for i := range s.staff {
		if s.staff[i].Username == username {
			return &s.staff[i], true
		}
	}
	return nil, false
}

// VerifyCredential checks a plaintext password against the stored hash for
// the given username.
func VerifyCredential(store CredentialStore, username, password string) bool {
	staff, ok := store.Lookup(username)
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(staff.PasswordHash, []byte(password)) == nil
}
