package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/agent-browser/internal/application"
	"github.com/eugenenazirov/agent-browser/internal/config"
	"github.com/eugenenazirov/agent-browser/internal/flags"
)

// dispatch parses the sanitized arguments into a command and runs it.
func dispatch(app *application.App, stdout, stderr io.Writer) int {
	kingpinApp := kingpin.New("agent-browser", "Browser automation CLI - configuration commands")
	kingpinApp.UsageWriter(stdout)
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.Terminate(nil)

	configCmd := kingpinApp.Command("config", "Inspect the resolved configuration")
	showCmd := configCmd.Command("show", "Print the resolved settings (JSON with --json, YAML otherwise)")
	layersCmd := configCmd.Command("layers", "List the config files that were loaded")

	cmd, err := kingpinApp.Parse(app.Args())
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", warningIndicator(stderr), err)
		return exitUsage
	}

	switch cmd {
	case showCmd.FullCommand():
		if err := showSettings(stdout, app.Settings()); err != nil {
			fmt.Fprintf(stderr, "%s %v\n", warningIndicator(stderr), err)
			return exitFatal
		}
	case layersCmd.FullCommand():
		listLayers(stdout, app.Sources())
	}
	return exitOK
}

func showSettings(w io.Writer, s flags.Settings) error {
	if s.JSON {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return enc.Close()
}

func listLayers(w io.Writer, sources []config.Source) {
	if len(sources) == 0 {
		fmt.Fprintln(w, "no config files loaded")
		return
	}
	for _, src := range sources {
		fmt.Fprintf(w, "%-8s %s\n", src.Layer, src.Path)
	}
}
