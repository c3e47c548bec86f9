package provision

import (
	"fmt"

	"nvim-bootstrap/internal/config"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/runner"
)

// Context carries the shared capabilities every provisioning stage uses:
// the logger, the command runner, the loaded configuration, and a scratch
// directory for downloaded archives. Stages share no in-memory state beyond
// this — each one reads and mutates the filesystem only.
type Context struct {
	Log    *logger.Logger
	Runner *runner.Runner
	Cfg    *config.Config

	// WorkDir is where downloaded archives land before extraction.
	// Empty means the current working directory.
	WorkDir string
}

// Step is one named provisioning stage. Run returns whether the stage
// skipped itself (target already in place) and any fatal error.
type Step struct {
	Name string
	Run  func(ctx *Context) (skipped bool, err error)
}

// Steps returns the provisioning stages in their required order:
// editor, font, distribution, configs, language servers. Later stages
// assume the filesystem state earlier ones produced, so the order is a
// hard contract, not a preference.
func Steps() []Step {
	return []Step{
		{Name: "editor", Run: installEditor},
		{Name: "font", Run: installFont},
		{Name: "distribution", Run: setupDistribution},
		{Name: "configs", Run: placeConfigs},
		{Name: "language-servers", Run: installLanguageServers},
	}
}

// Named returns the stage with the given name, for running a single stage
// from its CLI subcommand.
func Named(name string) (Step, bool) {
	for _, step := range Steps() {
		if step.Name == name {
			return step, true
		}
	}
	return Step{}, false
}

// Run executes steps strictly in order, stopping at the first failure.
// It returns one StepResult per attempted step; a failed step is the last
// entry, with its error recorded. There is no rollback — completed steps
// stay completed.
func Run(ctx *Context, steps []Step) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		ctx.Log.Debug("Starting stage: %s", step.Name)

		skipped, err := step.Run(ctx)
		res := StepResult{Name: step.Name, Skipped: skipped}
		if err != nil {
			res.Error = err.Error()
			results = append(results, res)
			return results, fmt.Errorf("stage %s failed: %w", step.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
