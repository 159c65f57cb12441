package generator

import (
	"github.com/lerenn/gh-issue-generator/pkg/credentials"
	"github.com/lerenn/gh-issue-generator/pkg/git"
)

// Credentials returns the resolved credentials.
func (g *realGenerator) Credentials() (credentials.Credentials, error) {
	holder, err := g.credentialHolder()
	if err != nil {
		return credentials.Credentials{}, err
	}
	return holder.Snapshot(), nil
}

// credentialHolder builds the credential holder on first use.
//
// The token comes from the parameters, then the configuration, then
// GITHUB_TOKEN. Owner and repository come from the parameters, then the
// configuration, then the origin remote of the working directory.
func (g *realGenerator) credentialHolder() (*credentials.Holder, error) {
	if g.holder != nil {
		return g.holder, nil
	}

	cfg, err := g.Config()
	if err != nil {
		return nil, err
	}

	token := firstNonEmpty(g.params.Token, cfg.Token)
	owner := firstNonEmpty(g.params.Owner, cfg.Owner)
	repo := firstNonEmpty(g.params.Repo, cfg.Repo)

	holder := credentials.NewHolder(token, owner, repo)
	if owner == "" || repo == "" {
		if ref, ok := g.originRepository(); ok {
			switch {
			case owner == "" && repo == "":
				holder.SetRepository(ref)
			case owner == "":
				holder.SetOwner(ref.Owner)
			default:
				holder.SetRepo(ref.Repository)
			}
		}
	}

	g.holder = holder
	return holder, nil
}

// originRepository reads the repository from the origin remote.
func (g *realGenerator) originRepository() (credentials.Reference, bool) {
	if g.params.WorkDir == "" {
		return credentials.Reference{}, false
	}

	exists, err := g.deps.Git.RemoteExists(g.params.WorkDir, git.DefaultRemote)
	if err != nil || !exists {
		g.deps.Logger.Logf("no %s remote in %s", git.DefaultRemote, g.params.WorkDir)
		return credentials.Reference{}, false
	}

	url, err := g.deps.Git.GetRemoteURL(g.params.WorkDir, git.DefaultRemote)
	if err != nil {
		g.deps.Logger.Logf("no repository from git remote: %v", err)
		return credentials.Reference{}, false
	}

	ref, err := credentials.ParseReference(url)
	if err != nil {
		g.deps.Logger.Logf("ignoring origin remote %s: %v", url, err)
		return credentials.Reference{}, false
	}

	g.deps.Logger.Logf("using repository %s from origin remote", ref)
	return ref, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
