package generator

// ClearTokenHistoryParams contains parameters for ClearTokenHistory.
type ClearTokenHistoryParams struct {
	SkipConfirmation bool
}

// ClearTokenHistory forgets the remembered tokens after confirmation.
func (g *realGenerator) ClearTokenHistory(params ClearTokenHistoryParams) error {
	if !params.SkipConfirmation {
		confirmed, err := g.deps.Prompt.PromptForConfirmation("Do you really want to clear the token history?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrCancelled
		}
	}

	cfg, err := g.Config()
	if err != nil {
		return err
	}

	cfg.ClearTokenHistory()
	return g.deps.Config.SaveConfig(cfg)
}
