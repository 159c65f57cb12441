package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// DefaultRemote is the remote owner and repository are read from.
const DefaultRemote = "origin"

// Git interface provides the repository lookups used to default the
// target repository.
type Git interface {
	// RemoteExists checks if a remote exists in the repository containing repoPath.
	RemoteExists(repoPath, remoteName string) (bool, error)

	// GetRemoteURL gets the first URL of a remote of the repository containing repoPath.
	GetRemoteURL(repoPath, remoteName string) (string, error)
}

type realGit struct{}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}

// open opens the repository containing path, searching parent directories.
func (g *realGit) open(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return repo, nil
}
