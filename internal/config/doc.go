// Package config locates, parses, and merges the file layers of agent-browser
// configuration. Implicit layers are ~/.config/agent-browser.json (user) and
// ./agent-browser.json (project), merged so the project layer wins per field
// and extension lists concatenate. An explicit --config path replaces both and
// is the only layer whose failure is fatal.
package config
