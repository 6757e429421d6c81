package config

import "slices"

// Record is the sparse contribution of one config file. A nil field means the
// layer expresses no opinion. Extensions distinguishes nil (absent) from an
// empty, non-nil slice (present but empty).
type Record struct {
	Headed            *bool    `json:"headed,omitempty" yaml:"headed,omitempty" toml:"headed,omitempty"`
	JSON              *bool    `json:"json,omitempty" yaml:"json,omitempty" toml:"json,omitempty"`
	Debug             *bool    `json:"debug,omitempty" yaml:"debug,omitempty" toml:"debug,omitempty"`
	Session           *string  `json:"session,omitempty" yaml:"session,omitempty" toml:"session,omitempty"`
	SessionName       *string  `json:"sessionName,omitempty" yaml:"sessionName,omitempty" toml:"sessionName,omitempty"`
	ExecutablePath    *string  `json:"executablePath,omitempty" yaml:"executablePath,omitempty" toml:"executablePath,omitempty"`
	Extensions        []string `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
	Profile           *string  `json:"profile,omitempty" yaml:"profile,omitempty" toml:"profile,omitempty"`
	State             *string  `json:"state,omitempty" yaml:"state,omitempty" toml:"state,omitempty"`
	Proxy             *string  `json:"proxy,omitempty" yaml:"proxy,omitempty" toml:"proxy,omitempty"`
	ProxyBypass       *string  `json:"proxyBypass,omitempty" yaml:"proxyBypass,omitempty" toml:"proxyBypass,omitempty"`
	Args              *string  `json:"args,omitempty" yaml:"args,omitempty" toml:"args,omitempty"`
	UserAgent         *string  `json:"userAgent,omitempty" yaml:"userAgent,omitempty" toml:"userAgent,omitempty"`
	Provider          *string  `json:"provider,omitempty" yaml:"provider,omitempty" toml:"provider,omitempty"`
	Device            *string  `json:"device,omitempty" yaml:"device,omitempty" toml:"device,omitempty"`
	IgnoreHTTPSErrors *bool    `json:"ignoreHttpsErrors,omitempty" yaml:"ignoreHttpsErrors,omitempty" toml:"ignoreHttpsErrors,omitempty"`
	AllowFileAccess   *bool    `json:"allowFileAccess,omitempty" yaml:"allowFileAccess,omitempty" toml:"allowFileAccess,omitempty"`
	CDP               *string  `json:"cdp,omitempty" yaml:"cdp,omitempty" toml:"cdp,omitempty"`
	AutoConnect       *bool    `json:"autoConnect,omitempty" yaml:"autoConnect,omitempty" toml:"autoConnect,omitempty"`
	Headers           *string  `json:"headers,omitempty" yaml:"headers,omitempty" toml:"headers,omitempty"`
}

// Merge folds other onto r and returns the result. Any field set in other wins,
// including an explicit false. Extensions present on both sides are
// concatenated with r's entries first.
func (r Record) Merge(other Record) Record {
	return Record{
		Headed:            pick(r.Headed, other.Headed),
		JSON:              pick(r.JSON, other.JSON),
		Debug:             pick(r.Debug, other.Debug),
		Session:           pick(r.Session, other.Session),
		SessionName:       pick(r.SessionName, other.SessionName),
		ExecutablePath:    pick(r.ExecutablePath, other.ExecutablePath),
		Extensions:        mergeExtensions(r.Extensions, other.Extensions),
		Profile:           pick(r.Profile, other.Profile),
		State:             pick(r.State, other.State),
		Proxy:             pick(r.Proxy, other.Proxy),
		ProxyBypass:       pick(r.ProxyBypass, other.ProxyBypass),
		Args:              pick(r.Args, other.Args),
		UserAgent:         pick(r.UserAgent, other.UserAgent),
		Provider:          pick(r.Provider, other.Provider),
		Device:            pick(r.Device, other.Device),
		IgnoreHTTPSErrors: pick(r.IgnoreHTTPSErrors, other.IgnoreHTTPSErrors),
		AllowFileAccess:   pick(r.AllowFileAccess, other.AllowFileAccess),
		CDP:               pick(r.CDP, other.CDP),
		AutoConnect:       pick(r.AutoConnect, other.AutoConnect),
		Headers:           pick(r.Headers, other.Headers),
	}
}

func pick[T any](base, other *T) *T {
	if other != nil {
		return other
	}
	return base
}

func mergeExtensions(base, other []string) []string {
	switch {
	case base != nil && other != nil:
		out := make([]string, 0, len(base)+len(other))
		out = append(out, base...)
		return append(out, other...)
	case other != nil:
		return slices.Clone(other)
	default:
		return slices.Clone(base)
	}
}

// Bool returns a pointer to v, for building records in code.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for building records in code.
func String(v string) *string { return &v }
