// Package logging builds the zap logger shared by the config loader and the
// command entry point.
package logging
