package flags

// globalFlags are stripped on their own.
var globalFlags = map[string]struct{}{
	"--json":                   {},
	"--full":                   {},
	"-f":                       {},
	"--headed":                 {},
	"--debug":                  {},
	"--ignore-https-errors":    {},
	"--allow-file-access":      {},
	"--auto-connect":           {},
	"--no-headed":              {},
	"--no-debug":               {},
	"--no-json":                {},
	"--no-ignore-https-errors": {},
	"--no-allow-file-access":   {},
	"--no-auto-connect":        {},
}

// globalValueFlags are stripped together with the token that follows them.
var globalValueFlags = map[string]struct{}{
	"--session":         {},
	"--headers":         {},
	"--executable-path": {},
	"--cdp":             {},
	"--extension":       {},
	"--profile":         {},
	"--state":           {},
	"--proxy":           {},
	"--proxy-bypass":    {},
	"--args":            {},
	"--user-agent":      {},
	"-p":                {},
	"--provider":        {},
	"--device":          {},
	"--session-name":    {},
	"--config":          {},
}

// Sanitize removes global flags and their values from args, keeping every
// other token in its original order. The token after a value flag is always
// dropped, even when it looks like a flag itself.
func Sanitize(args []string) []string {
	out := make([]string, 0, len(args))
	skipNext := false

	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if _, ok := globalValueFlags[arg]; ok {
			skipNext = true
			continue
		}
		if _, ok := globalFlags[arg]; ok {
			continue
		}
		out = append(out, arg)
	}
	return out
}
