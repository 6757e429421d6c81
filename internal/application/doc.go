// Package application wires the config loader, flag resolver, and argument
// sanitizer into a single resolution step, keeping the main package focused
// on command dispatch and process exit.
package application
