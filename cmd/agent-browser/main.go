package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eugenenazirov/agent-browser/internal/application"
	"github.com/eugenenazirov/agent-browser/internal/config"
	"github.com/eugenenazirov/agent-browser/internal/flags"
	"github.com/eugenenazirov/agent-browser/internal/logging"
	"github.com/eugenenazirov/agent-browser/internal/storage"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], flags.EnvFunc(os.LookupEnv), storage.NewOSReader(), os.Stdout, os.Stderr))
}

// run resolves configuration for args and dispatches the remaining command.
// It returns the process exit status instead of exiting.
func run(args []string, env flags.Env, reader storage.Reader, stdout, stderr io.Writer, opts ...config.Option) int {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	// loader entries are logged before the file layers are resolved
	if flags.Resolve(config.Record{}, nil, args).Debug {
		level.SetLevel(zapcore.DebugLevel)
	}
	logger, err := logging.New(level, logging.WithWriter(stderr))
	if err != nil {
		fmt.Fprintf(stderr, "%s failed to initialize logger: %v\n", warningIndicator(stderr), err)
		return exitFatal
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(args, env, config.NewLoader(reader, logger, opts...))
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", warningIndicator(stderr), err)
		return exitFatal
	}

	if app.Settings().Debug {
		level.SetLevel(zapcore.DebugLevel)
	}
	for _, src := range app.Sources() {
		logger.Debug("config layer", zap.String("layer", string(src.Layer)), zap.String("path", src.Path))
	}
	logger.Debug("resolved settings",
		zap.String("session", app.Settings().Session),
		zap.Strings("args", app.Args()),
	)

	return dispatch(app, stdout, stderr)
}

// warningIndicator renders the diagnostic marker with the colour profile of w.
func warningIndicator(w io.Writer) string {
	return lipgloss.NewRenderer(w).NewStyle().
		Foreground(lipgloss.Color("11")).
		Bold(true).
		Render("⚠")
}
