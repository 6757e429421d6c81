package flags

import (
	"slices"

	"github.com/eugenenazirov/agent-browser/internal/config"
)

// DefaultSession is used when no layer names a session.
const DefaultSession = "default"

// Settings is the fully resolved configuration for one invocation.
type Settings struct {
	JSON              bool     `json:"json" yaml:"json"`
	Full              bool     `json:"full" yaml:"full"`
	Headed            bool     `json:"headed" yaml:"headed"`
	Debug             bool     `json:"debug" yaml:"debug"`
	Session           string   `json:"session" yaml:"session"`
	SessionName       string   `json:"sessionName" yaml:"sessionName"`
	Headers           string   `json:"headers" yaml:"headers"`
	ExecutablePath    string   `json:"executablePath" yaml:"executablePath"`
	CDP               string   `json:"cdp" yaml:"cdp"`
	Extensions        []string `json:"extensions" yaml:"extensions"`
	Profile           string   `json:"profile" yaml:"profile"`
	State             string   `json:"state" yaml:"state"`
	Proxy             string   `json:"proxy" yaml:"proxy"`
	ProxyBypass       string   `json:"proxyBypass" yaml:"proxyBypass"`
	Args              string   `json:"args" yaml:"args"`
	UserAgent         string   `json:"userAgent" yaml:"userAgent"`
	Provider          string   `json:"provider" yaml:"provider"`
	Device            string   `json:"device" yaml:"device"`
	IgnoreHTTPSErrors bool     `json:"ignoreHttpsErrors" yaml:"ignoreHttpsErrors"`
	AllowFileAccess   bool     `json:"allowFileAccess" yaml:"allowFileAccess"`
	AutoConnect       bool     `json:"autoConnect" yaml:"autoConnect"`

	// Explicit records which launch-time options were passed on the command
	// line, as opposed to coming from the environment or a config file.
	Explicit Provenance `json:"explicit" yaml:"explicit"`
}

// Provenance marks launch-time options set by a command-line flag.
// A mark survives a later negation: "--allow-file-access --no-allow-file-access"
// leaves AllowFileAccess marked with an effective value of false.
type Provenance struct {
	ExecutablePath  bool `json:"executablePath" yaml:"executablePath"`
	Extensions      bool `json:"extensions" yaml:"extensions"`
	Profile         bool `json:"profile" yaml:"profile"`
	State           bool `json:"state" yaml:"state"`
	Args            bool `json:"args" yaml:"args"`
	UserAgent       bool `json:"userAgent" yaml:"userAgent"`
	Proxy           bool `json:"proxy" yaml:"proxy"`
	ProxyBypass     bool `json:"proxyBypass" yaml:"proxyBypass"`
	AllowFileAccess bool `json:"allowFileAccess" yaml:"allowFileAccess"`
}

// Resolve builds Settings from the merged file record, the environment, and args.
// Unknown tokens are ignored, and a value flag in last position is a no-op.
func Resolve(file config.Record, env Env, args []string) Settings {
	s := fromLayers(file, env)

	i := 0
	// value returns the token after args[i] and advances past it.
	value := func() (string, bool) {
		if i+1 >= len(args) {
			return "", false
		}
		i++
		return args[i], true
	}

	for ; i < len(args); i++ {
		switch args[i] {
		case "--json":
			s.JSON = true
		case "--no-json":
			s.JSON = false
		case "--full", "-f":
			s.Full = true
		case "--headed":
			s.Headed = true
		case "--no-headed":
			s.Headed = false
		case "--debug":
			s.Debug = true
		case "--no-debug":
			s.Debug = false
		case "--ignore-https-errors":
			s.IgnoreHTTPSErrors = true
		case "--no-ignore-https-errors":
			s.IgnoreHTTPSErrors = false
		case "--allow-file-access":
			s.AllowFileAccess = true
			s.Explicit.AllowFileAccess = true
		case "--no-allow-file-access":
			s.AllowFileAccess = false
		case "--auto-connect":
			s.AutoConnect = true
		case "--no-auto-connect":
			s.AutoConnect = false
		case "--session":
			if v, ok := value(); ok {
				s.Session = v
			}
		case "--session-name":
			if v, ok := value(); ok {
				s.SessionName = v
			}
		case "--headers":
			if v, ok := value(); ok {
				s.Headers = v
			}
		case "--cdp":
			if v, ok := value(); ok {
				s.CDP = v
			}
		case "-p", "--provider":
			if v, ok := value(); ok {
				s.Provider = v
			}
		case "--device":
			if v, ok := value(); ok {
				s.Device = v
			}
		case "--executable-path":
			if v, ok := value(); ok {
				s.ExecutablePath = v
				s.Explicit.ExecutablePath = true
			}
		case "--extension":
			if v, ok := value(); ok {
				s.Extensions = append(s.Extensions, v)
				s.Explicit.Extensions = true
			}
		case "--profile":
			if v, ok := value(); ok {
				s.Profile = v
				s.Explicit.Profile = true
			}
		case "--state":
			if v, ok := value(); ok {
				s.State = v
				s.Explicit.State = true
			}
		case "--proxy":
			if v, ok := value(); ok {
				s.Proxy = v
				s.Explicit.Proxy = true
			}
		case "--proxy-bypass":
			if v, ok := value(); ok {
				s.ProxyBypass = v
				s.Explicit.ProxyBypass = true
			}
		case "--args":
			if v, ok := value(); ok {
				s.Args = v
				s.Explicit.Args = true
			}
		case "--user-agent":
			if v, ok := value(); ok {
				s.UserAgent = v
				s.Explicit.UserAgent = true
			}
		case "--config":
			// consumed by the config loader
			value()
		}
	}

	return s
}

// fromLayers applies defaults, then the file record, then the environment.
func fromLayers(file config.Record, env Env) Settings {
	extensions := splitList(envValue(env, "EXTENSIONS"))
	if len(extensions) == 0 {
		extensions = slices.Clone(file.Extensions)
	}
	if extensions == nil {
		extensions = []string{}
	}

	return Settings{
		JSON:              boolValue(file.JSON),
		Headed:            boolValue(file.Headed),
		Debug:             boolValue(file.Debug),
		Session:           stringFromEnv(env, "SESSION", file.Session, DefaultSession),
		SessionName:       stringFromEnv(env, "SESSION_NAME", file.SessionName, ""),
		Headers:           stringValue(file.Headers),
		ExecutablePath:    stringFromEnv(env, "EXECUTABLE_PATH", file.ExecutablePath, ""),
		CDP:               stringValue(file.CDP),
		Extensions:        extensions,
		Profile:           stringFromEnv(env, "PROFILE", file.Profile, ""),
		State:             stringFromEnv(env, "STATE", file.State, ""),
		Proxy:             stringFromEnv(env, "PROXY", file.Proxy, ""),
		ProxyBypass:       stringFromEnv(env, "PROXY_BYPASS", file.ProxyBypass, ""),
		Args:              stringFromEnv(env, "ARGS", file.Args, ""),
		UserAgent:         stringFromEnv(env, "USER_AGENT", file.UserAgent, ""),
		Provider:          stringFromEnv(env, "PROVIDER", file.Provider, ""),
		Device:            stringFromEnv(env, "IOS_DEVICE", file.Device, ""),
		IgnoreHTTPSErrors: boolValue(file.IgnoreHTTPSErrors),
		AllowFileAccess:   presenceFromEnv(env, "ALLOW_FILE_ACCESS", file.AllowFileAccess),
		AutoConnect:       presenceFromEnv(env, "AUTO_CONNECT", file.AutoConnect),
	}
}

func envValue(env Env, field string) string {
	v, _ := lookup(env, field)
	return v
}

func boolValue(v *bool) bool {
	return v != nil && *v
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
