package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/eugenenazirov/agent-browser/internal/config"
)

func args(s string) []string {
	return strings.Fields(s)
}

func TestResolveDefaults(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, nil)

	assert.Equal(t, DefaultSession, s.Session)
	assert.False(t, s.JSON)
	assert.False(t, s.Headed)
	assert.False(t, s.Debug)
	assert.False(t, s.AllowFileAccess)
	assert.False(t, s.AutoConnect)
	assert.Empty(t, s.Headers)
	assert.Empty(t, s.ExecutablePath)
	assert.NotNil(t, s.Extensions)
	assert.Empty(t, s.Extensions)
	assert.Equal(t, Provenance{}, s.Explicit)
}

func TestResolveNilEnv(t *testing.T) {
	s := Resolve(config.Record{Session: config.String("file")}, nil, nil)
	assert.Equal(t, "file", s.Session)
}

func TestResolveHeadersFlag(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, args(`open example.com --headers {"Auth":"token"}`))
	assert.Equal(t, `{"Auth":"token"}`, s.Headers)
}

func TestResolveHeadersWithSpaces(t *testing.T) {
	input := []string{"open", "example.com", "--headers", `{"Authorization": "Bearer token"}`}
	s := Resolve(config.Record{}, MapEnv{}, input)
	assert.Equal(t, `{"Authorization": "Bearer token"}`, s.Headers)
}

func TestResolveHeadersWithOtherFlags(t *testing.T) {
	input := []string{"open", "example.com", "--headers", `{"Auth":"token"}`, "--json", "--headed"}
	s := Resolve(config.Record{}, MapEnv{}, input)

	assert.Equal(t, `{"Auth":"token"}`, s.Headers)
	assert.True(t, s.JSON)
	assert.True(t, s.Headed)
	assert.Equal(t, []string{"open", "example.com"}, Sanitize(input))
}

func TestResolveValueFlags(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, args(
		"--session test --session-name app --executable-path /custom/chrome --cdp 9222 "+
			"-p ios --device iPhone --profile /p --state /s.json --proxy http://proxy "+
			"--proxy-bypass localhost --args --no-sandbox --user-agent ua open example.com",
	))

	assert.Equal(t, "test", s.Session)
	assert.Equal(t, "app", s.SessionName)
	assert.Equal(t, "/custom/chrome", s.ExecutablePath)
	assert.Equal(t, "9222", s.CDP)
	assert.Equal(t, "ios", s.Provider)
	assert.Equal(t, "iPhone", s.Device)
	assert.Equal(t, "/p", s.Profile)
	assert.Equal(t, "/s.json", s.State)
	assert.Equal(t, "http://proxy", s.Proxy)
	assert.Equal(t, "localhost", s.ProxyBypass)
	assert.Equal(t, "--no-sandbox", s.Args)
	assert.Equal(t, "ua", s.UserAgent)
}

func TestResolveMissingValueIsNoop(t *testing.T) {
	file := config.Record{ExecutablePath: config.String("/from/file")}

	s := Resolve(file, MapEnv{}, args("--executable-path"))
	assert.Equal(t, "/from/file", s.ExecutablePath)
	assert.False(t, s.Explicit.ExecutablePath)

	s = Resolve(config.Record{}, MapEnv{}, args("--executable-path"))
	assert.Empty(t, s.ExecutablePath)
}

func TestResolveFullFlag(t *testing.T) {
	assert.True(t, Resolve(config.Record{}, MapEnv{}, args("snapshot -f")).Full)
	assert.True(t, Resolve(config.Record{}, MapEnv{}, args("snapshot --full")).Full)
	assert.False(t, Resolve(config.Record{}, MapEnv{}, args("snapshot")).Full)
}

func TestResolveNegationFlags(t *testing.T) {
	testCases := []struct {
		flag string
		get  func(Settings) bool
	}{
		{"headed", func(s Settings) bool { return s.Headed }},
		{"debug", func(s Settings) bool { return s.Debug }},
		{"json", func(s Settings) bool { return s.JSON }},
		{"ignore-https-errors", func(s Settings) bool { return s.IgnoreHTTPSErrors }},
		{"allow-file-access", func(s Settings) bool { return s.AllowFileAccess }},
		{"auto-connect", func(s Settings) bool { return s.AutoConnect }},
	}

	for _, tc := range testCases {
		t.Run(tc.flag, func(t *testing.T) {
			pos, neg := "--"+tc.flag, "--no-"+tc.flag

			assert.False(t, tc.get(Resolve(config.Record{}, MapEnv{}, []string{pos, neg, "open"})))
			assert.True(t, tc.get(Resolve(config.Record{}, MapEnv{}, []string{neg, pos, "open"})))
		})
	}
}

func TestResolveNegationOverridesFileAndEnv(t *testing.T) {
	file := config.Record{Headed: config.Bool(true), AutoConnect: config.Bool(true)}
	env := MapEnv{"AGENT_BROWSER_ALLOW_FILE_ACCESS": "1"}

	s := Resolve(file, env, args("--no-headed --no-auto-connect --no-allow-file-access"))
	assert.False(t, s.Headed)
	assert.False(t, s.AutoConnect)
	assert.False(t, s.AllowFileAccess)
	assert.False(t, s.Explicit.AllowFileAccess)
}

func TestResolveToggleLastOccurrenceWins(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seq := rapid.SliceOfN(rapid.SampledFrom([]string{"--headed", "--no-headed", "open"}), 0, 12).Draw(t, "args")
		fileValue := rapid.Bool().Draw(t, "file")

		want := fileValue
		for _, arg := range seq {
			switch arg {
			case "--headed":
				want = true
			case "--no-headed":
				want = false
			}
		}

		got := Resolve(config.Record{Headed: config.Bool(fileValue)}, MapEnv{}, seq).Headed
		if got != want {
			t.Fatalf("args %v with file %v: expected %v, got %v", seq, fileValue, want, got)
		}
	})
}

func TestResolvePrecedence(t *testing.T) {
	file := config.Record{
		Proxy:   config.String("http://file"),
		Profile: config.String("/file/profile"),
		State:   config.String("/file/state"),
	}
	env := MapEnv{
		"AGENT_BROWSER_PROXY":   "http://env",
		"AGENT_BROWSER_PROFILE": "/env/profile",
	}

	s := Resolve(file, env, args("--proxy http://cli"))

	assert.Equal(t, "http://cli", s.Proxy, "cli beats env and file")
	assert.Equal(t, "/env/profile", s.Profile, "env beats file")
	assert.Equal(t, "/file/state", s.State, "file used when env is absent")
	assert.True(t, s.Explicit.Proxy)
	assert.False(t, s.Explicit.Profile)
	assert.False(t, s.Explicit.State)
}

func TestResolveEnvMapping(t *testing.T) {
	env := MapEnv{
		"AGENT_BROWSER_SESSION":         "env-session",
		"AGENT_BROWSER_SESSION_NAME":    "env-name",
		"AGENT_BROWSER_EXECUTABLE_PATH": "/env/chrome",
		"AGENT_BROWSER_STATE":           "/env/state",
		"AGENT_BROWSER_PROXY_BYPASS":    "env-bypass",
		"AGENT_BROWSER_ARGS":            "--env",
		"AGENT_BROWSER_USER_AGENT":      "env-ua",
		"AGENT_BROWSER_PROVIDER":        "env-provider",
		"AGENT_BROWSER_IOS_DEVICE":      "env-device",
	}

	s := Resolve(config.Record{}, env, nil)

	assert.Equal(t, "env-session", s.Session)
	assert.Equal(t, "env-name", s.SessionName)
	assert.Equal(t, "/env/chrome", s.ExecutablePath)
	assert.Equal(t, "/env/state", s.State)
	assert.Equal(t, "env-bypass", s.ProxyBypass)
	assert.Equal(t, "--env", s.Args)
	assert.Equal(t, "env-ua", s.UserAgent)
	assert.Equal(t, "env-provider", s.Provider)
	assert.Equal(t, "env-device", s.Device)
	assert.Equal(t, Provenance{}, s.Explicit)
}

func TestResolveEmptyEnvOverridesFileString(t *testing.T) {
	file := config.Record{Session: config.String("file-session"), Proxy: config.String("http://file")}
	env := MapEnv{"AGENT_BROWSER_SESSION": "", "AGENT_BROWSER_PROXY": ""}

	s := Resolve(file, env, nil)
	assert.Equal(t, "", s.Session)
	assert.Equal(t, "", s.Proxy)
}

func TestResolvePresenceOnlyBooleans(t *testing.T) {
	for _, value := range []string{"", "0", "false", "yes"} {
		env := MapEnv{
			"AGENT_BROWSER_ALLOW_FILE_ACCESS": value,
			"AGENT_BROWSER_AUTO_CONNECT":      value,
		}
		s := Resolve(config.Record{AllowFileAccess: config.Bool(false)}, env, nil)
		assert.True(t, s.AllowFileAccess, "value %q", value)
		assert.True(t, s.AutoConnect, "value %q", value)
	}

	s := Resolve(config.Record{AutoConnect: config.Bool(true)}, MapEnv{}, nil)
	assert.True(t, s.AutoConnect, "file value used when env is absent")
	assert.False(t, s.AllowFileAccess)
}

func TestResolveEnvExtensions(t *testing.T) {
	file := config.Record{Extensions: []string{"/file1", "/file2"}}

	s := Resolve(file, MapEnv{"AGENT_BROWSER_EXTENSIONS": "/a, /b ,,/c"}, nil)
	assert.Equal(t, []string{"/a", "/b", "/c"}, s.Extensions)

	s = Resolve(file, MapEnv{"AGENT_BROWSER_EXTENSIONS": " , ,"}, nil)
	assert.Equal(t, []string{"/file1", "/file2"}, s.Extensions, "blank env falls back to file")

	s = Resolve(file, MapEnv{}, nil)
	assert.Equal(t, []string{"/file1", "/file2"}, s.Extensions)
}

func TestResolveCLIExtensionsAreAdditive(t *testing.T) {
	file := config.Record{Extensions: []string{"/file"}}

	s := Resolve(file, MapEnv{}, args("--extension /cli1 --extension /cli2"))
	assert.Equal(t, []string{"/file", "/cli1", "/cli2"}, s.Extensions)
	assert.True(t, s.Explicit.Extensions)

	s = Resolve(file, MapEnv{"AGENT_BROWSER_EXTENSIONS": "/env"}, args("--extension /cli"))
	assert.Equal(t, []string{"/env", "/cli"}, s.Extensions)

	require.Equal(t, []string{"/file"}, file.Extensions, "file record must not be mutated")
}

func TestResolveProvenance(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, args("--executable-path /chrome --profile /profile --proxy http://proxy snapshot"))
	assert.True(t, s.Explicit.ExecutablePath)
	assert.True(t, s.Explicit.Profile)
	assert.True(t, s.Explicit.Proxy)
	assert.False(t, s.Explicit.Extensions)
	assert.False(t, s.Explicit.State)

	s = Resolve(config.Record{}, MapEnv{"AGENT_BROWSER_PROFILE": "/env"}, args("snapshot"))
	assert.Equal(t, "/env", s.Profile)
	assert.False(t, s.Explicit.Profile)

	s = Resolve(config.Record{}, MapEnv{}, args("--profile p"))
	assert.True(t, s.Explicit.Profile)

	s = Resolve(config.Record{}, MapEnv{}, args("--state /s --args a --user-agent ua --proxy-bypass lo --extension /e"))
	assert.Equal(t, Provenance{State: true, Args: true, UserAgent: true, ProxyBypass: true, Extensions: true}, s.Explicit)
}

func TestResolveAllowFileAccessProvenanceSurvivesNegation(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, args("--allow-file-access --no-allow-file-access open"))
	assert.False(t, s.AllowFileAccess)
	assert.True(t, s.Explicit.AllowFileAccess)
}

func TestResolveSkipsConfigValue(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, args("--config --headed open"))
	assert.False(t, s.Headed, "token after --config is its value")

	s = Resolve(config.Record{}, MapEnv{}, args("--config ./c.json --headed"))
	assert.True(t, s.Headed)
}

func TestResolveIgnoresUnknownTokens(t *testing.T) {
	s := Resolve(config.Record{}, MapEnv{}, args("click --button right --headed #submit"))
	assert.True(t, s.Headed)
	assert.Equal(t, DefaultSession, s.Session)
}

func TestEnvFunc(t *testing.T) {
	env := EnvFunc(func(name string) (string, bool) {
		if name == "AGENT_BROWSER_SESSION" {
			return "from-func", true
		}
		return "", false
	})
	assert.Equal(t, "from-func", Resolve(config.Record{}, env, nil).Session)
}
