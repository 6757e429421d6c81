// Agent-browser resolves its global options from config files, AGENT_BROWSER_*
// environment variables, and command-line flags before dispatching a command.
//
// Config files are read from ~/.config/agent-browser.json and
// ./agent-browser.json, or only from the file named by --config. A missing or
// malformed --config file stops the program with exit status 1.
//
// Usage:
//
//	agent-browser config show                   # resolved settings as YAML
//	agent-browser --json config show            # resolved settings as JSON
//	agent-browser --config ./ab.toml config layers
package main
