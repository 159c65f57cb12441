package git

import (
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// GetRemoteURL gets the first URL of a remote.
func (g *realGit) GetRemoteURL(repoPath, remoteName string) (string, error) {
	repo, err := g.open(repoPath)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(remoteName)
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return "", fmt.Errorf("%w: %s", ErrRemoteNotFound, remoteName)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", ErrRemoteNoURL, remoteName)
	}

	return urls[0], nil
}
