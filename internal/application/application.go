package application

import (
	"github.com/eugenenazirov/agent-browser/internal/config"
	"github.com/eugenenazirov/agent-browser/internal/flags"
)

// App holds the outcome of configuration resolution for one invocation.
type App struct {
	settings flags.Settings
	args     []string
	sources  []config.Source
}

// New loads the config file layers, resolves settings against env and args,
// and strips global flags from args. The only error it returns is a
// *config.FatalError from an explicit --config path; deciding to exit is left
// to the caller.
func New(args []string, env flags.Env, loader *config.Loader) (*App, error) {
	loaded, err := loader.Load(args)
	if err != nil {
		return nil, err
	}

	return &App{
		settings: flags.Resolve(loaded.Merged, env, args),
		args:     flags.Sanitize(args),
		sources:  loaded.Sources,
	}, nil
}

// Settings returns the resolved settings.
func (a *App) Settings() flags.Settings {
	return a.settings
}

// Args returns the arguments left for command dispatch.
func (a *App) Args() []string {
	return a.args
}

// Sources returns the config file layers that were loaded, lowest precedence first.
func (a *App) Sources() []config.Source {
	return a.sources
}
