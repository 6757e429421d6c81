package flags

import (
	"strings"
)

// EnvPrefix is shared by every environment variable the resolver reads.
const EnvPrefix = "AGENT_BROWSER_"

// Env looks up environment variables.
type Env interface {
	Lookup(name string) (string, bool)
}

// EnvFunc adapts a lookup function such as os.LookupEnv to Env.
type EnvFunc func(name string) (string, bool)

// Lookup calls f.
func (f EnvFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// MapEnv is an Env backed by a map.
type MapEnv map[string]string

// Lookup returns the entry for name.
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func lookup(env Env, field string) (string, bool) {
	if env == nil {
		return "", false
	}
	return env.Lookup(EnvPrefix + field)
}

// stringFromEnv returns the env value when the variable is set, even to "",
// otherwise the file value, otherwise def.
func stringFromEnv(env Env, field string, file *string, def string) string {
	if v, ok := lookup(env, field); ok {
		return v
	}
	if file != nil {
		return *file
	}
	return def
}

// presenceFromEnv treats any set value, including "" or "false", as true.
func presenceFromEnv(env Env, field string, file *bool) bool {
	if _, ok := lookup(env, field); ok {
		return true
	}
	return file != nil && *file
}

// splitList parses a comma-separated list, trimming entries and dropping empties.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
