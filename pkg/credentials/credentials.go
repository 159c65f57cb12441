// Package credentials holds the (token, owner, repo) triple that addresses a
// GitHub repository.
package credentials

import (
	"fmt"
	"os"
	"sync"
)

// TokenEnvVar is read when no token was given explicitly.
const TokenEnvVar = "GITHUB_TOKEN"

// Credentials addresses a single remote repository.
type Credentials struct {
	Token string
	Owner string
	Repo  string
}

// Validate returns the configuration error for the first missing field,
// checking token, owner and repository in that order. Owner and repository
// must not be "." or "..".
func (c Credentials) Validate() error {
	switch {
	case c.Token == "":
		return ErrMissingToken
	case c.Owner == "":
		return ErrMissingOwner
	case c.Repo == "":
		return ErrMissingRepo
	case isDotSegment(c.Owner):
		return fmt.Errorf("%w: %w: owner %q", ErrConfiguration, ErrInvalidReference, c.Owner)
	case isDotSegment(c.Repo):
		return fmt.Errorf("%w: %w: repository %q", ErrConfiguration, ErrInvalidReference, c.Repo)
	}
	return nil
}

func isDotSegment(s string) bool {
	return s == "." || s == ".."
}

// Complete reports whether all three fields are set.
func (c Credentials) Complete() bool {
	return c.Validate() == nil
}

// FullName returns "owner/repo".
func (c Credentials) FullName() string {
	return fmt.Sprintf("%s/%s", c.Owner, c.Repo)
}

// String never prints the token.
func (c Credentials) String() string {
	token := "<unset>"
	if c.Token != "" {
		token = "<redacted>"
	}
	return fmt.Sprintf("%s (token: %s)", c.FullName(), token)
}

// Holder is the mutable credential context owned by a session. Readers take
// a Snapshot at call time; writes only happen through the setters.
type Holder struct {
	mu    sync.RWMutex
	creds Credentials
}

// NewHolder creates a holder. An empty token falls back to GITHUB_TOKEN.
func NewHolder(token, owner, repo string) *Holder {
	if token == "" {
		token = os.Getenv(TokenEnvVar)
	}
	return &Holder{creds: Credentials{Token: token, Owner: owner, Repo: repo}}
}

// Snapshot returns a copy of the current credentials.
func (h *Holder) Snapshot() Credentials {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.creds
}

// SetToken replaces the token.
func (h *Holder) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds.Token = token
}

// SetOwner replaces the repository owner.
func (h *Holder) SetOwner(owner string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds.Owner = owner
}

// SetRepo replaces the repository name.
func (h *Holder) SetRepo(repo string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds.Repo = repo
}

// SetRepository replaces owner and repository name together.
func (h *Holder) SetRepository(ref Reference) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.creds.Owner = ref.Owner
	h.creds.Repo = ref.Repository
}
