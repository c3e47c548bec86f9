package provision

// installEditor installs the configured terminal editor through the system
// package manager. If the editor already answers its version probe the
// install is skipped entirely, making the stage safe to re-run.
func installEditor(ctx *Context) (bool, error) {
	ed := ctx.Cfg.Editor

	if out, err := ctx.Runner.Output(ed.Probe); err == nil {
		ctx.Log.Info("%s is already installed. Skipping install.", ed.Name)
		ctx.Log.Debug("Probe answered: %s", out)
		return true, nil
	}

	ctx.Log.Info("Installing %s...", ed.Name)
	if err := ctx.Runner.Run(ed.Install); err != nil {
		return false, err
	}
	return false, nil
}
