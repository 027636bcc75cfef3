package ports

// CredentialStore persists the one string credential the client owns: the
// signed session token. Absence (empty string from Load) means
// unauthenticated. Reads take a stale-but-valid snapshot at call time; writes
// happen only on explicit session transitions.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}
