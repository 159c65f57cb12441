package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
)

// RemoteExists checks if a remote exists.
func (g *realGit) RemoteExists(repoPath, remoteName string) (bool, error) {
	repo, err := g.open(repoPath)
	if err != nil {
		return false, err
	}

	if _, err := repo.Remote(remoteName); err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
