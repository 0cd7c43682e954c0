package helpers

import "golang.org/x/crypto/bcrypt"

// CredentialMatcher compares a stored reference credential with the secret a
// caller supplied. The lookup/branching logic in the auth service never cares
// how the comparison works, so the strategy can be swapped without touching
// it.
type CredentialMatcher interface {
	Matches(stored, supplied string) bool
}

// PlainMatcher compares credentials by exact string equality, matching how
// the accounts are provisioned today. This is a known weak point, not a
// feature: swap in BcryptMatcher once stored credentials are hashed.
type PlainMatcher struct{}

func (PlainMatcher) Matches(stored, supplied string) bool {
	return stored == supplied
}

// BcryptMatcher treats the stored credential as a bcrypt hash.
type BcryptMatcher struct{}

func (BcryptMatcher) Matches(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// HashPassword hashes a plain text password using bcrypt. Used by seeding
// when the bcrypt scheme is selected.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// MatcherForScheme returns the matcher for a configured credential scheme,
// defaulting to plain equality for unknown values.
func MatcherForScheme(scheme string) CredentialMatcher {
	if scheme == "bcrypt" {
		return BcryptMatcher{}
	}
	return PlainMatcher{}
}
