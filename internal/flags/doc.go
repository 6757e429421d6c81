// Package flags produces the final agent-browser Settings from the merged file
// record, AGENT_BROWSER_* environment variables, and the raw argument list,
// and strips global flags from the argument list before command dispatch.
//
// Precedence per field, lowest to highest: built-in default, config file,
// environment variable, command-line flag. Within the command line the last
// occurrence wins, so "--headed --no-headed" resolves to false.
package flags
