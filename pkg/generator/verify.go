package generator

import (
	"context"
	"fmt"
)

// Verify checks the credentials against the repository. On success the
// owner, repository and token are saved and the token is added to the
// history.
func (g *realGenerator) Verify(ctx context.Context) (bool, error) {
	creds, err := g.Credentials()
	if err != nil {
		return false, err
	}
	if err := creds.Validate(); err != nil {
		return false, err
	}

	f, err := g.forge()
	if err != nil {
		return false, err
	}

	g.deps.Logger.Logf("verifying access to %s", creds.FullName())
	if !f.VerifyCredentials(ctx, creds) {
		return false, nil
	}

	cfg, err := g.Config()
	if err != nil {
		return true, err
	}
	if !cfg.HasToken(creds.Token) {
		g.deps.Logger.Logf("remembering new token")
	}
	cfg.Owner = creds.Owner
	cfg.Repo = creds.Repo
	cfg.RememberToken(creds.Token)

	if err := g.deps.Config.SaveConfig(cfg); err != nil {
		return true, fmt.Errorf("failed to save settings: %w", err)
	}

	return true, nil
}
