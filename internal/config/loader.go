package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/agent-browser/internal/storage"
)

// FileName is the config file looked up in ~/.config and the working directory.
const FileName = "agent-browser.json"

const configFlag = "--config"

// Layer identifies where a loaded record came from.
type Layer string

const (
	LayerUser     Layer = "user"
	LayerProject  Layer = "project"
	LayerExplicit Layer = "explicit"
)

// Source is one successfully parsed config file.
type Source struct {
	Layer  Layer
	Path   string
	Record Record
}

// Result holds the loaded layers in precedence order and their merge.
type Result struct {
	Sources []Source
	Merged  Record
}

// Loader reads config layers through a storage.Reader.
type Loader struct {
	reader  storage.Reader
	logger  *zap.Logger
	homeDir func() (string, error)
	workDir string
}

// Option customises a Loader.
type Option func(*Loader)

// WithHomeDir overrides home directory discovery.
func WithHomeDir(fn func() (string, error)) Option {
	return func(l *Loader) {
		l.homeDir = fn
	}
}

// WithWorkDir sets the directory searched for the project layer.
// The default is the process working directory.
func WithWorkDir(dir string) Option {
	return func(l *Loader) {
		l.workDir = dir
	}
}

// NewLoader creates a loader. A nil logger discards warnings.
func NewLoader(reader storage.Reader, logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		reader:  reader,
		logger:  logger,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the file layers for args.
// When args carry --config <path>, only that file is read and any failure is
// returned as a *FatalError. Otherwise the user and project layers are read;
// a missing file is skipped silently and a malformed one is skipped with a warning.
func (l *Loader) Load(args []string) (Result, error) {
	if path, ok := ExplicitPath(args); ok {
		rec, err := l.loadExplicit(path)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Sources: []Source{{Layer: LayerExplicit, Path: path, Record: rec}},
			Merged:  rec,
		}, nil
	}

	var res Result
	if home, err := l.homeDir(); err == nil && home != "" {
		l.collect(&res, LayerUser, filepath.Join(home, ".config", FileName))
	} else {
		l.logger.Debug("skipping user config layer", zap.Error(err))
	}
	l.collect(&res, LayerProject, filepath.Join(l.workDir, FileName))

	for _, src := range res.Sources {
		res.Merged = res.Merged.Merge(src.Record)
	}
	return res, nil
}

func (l *Loader) loadExplicit(path string) (Record, error) {
	data, err := l.reader.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, &FatalError{Path: path, Err: ErrConfigNotFound}
		}
		return Record{}, &FatalError{Path: path, Err: fmt.Errorf("read file: %w", err)}
	}

	rec, err := Parse(path, data)
	if err != nil {
		return Record{}, &FatalError{Path: path, Err: err}
	}
	l.logger.Debug("loaded config layer", zap.String("layer", string(LayerExplicit)), zap.String("path", path))
	return rec, nil
}

func (l *Loader) collect(res *Result, layer Layer, path string) {
	data, err := l.reader.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("config layer unreadable",
				zap.String("layer", string(layer)),
				zap.String("path", path),
				zap.Error(err),
			)
		}
		return
	}

	rec, err := Parse(path, data)
	if err != nil {
		l.logger.Warn("invalid config file",
			zap.String("layer", string(layer)),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}

	l.logger.Debug("loaded config layer", zap.String("layer", string(layer)), zap.String("path", path))
	res.Sources = append(res.Sources, Source{Layer: layer, Path: path, Record: rec})
}

// Parse decodes a config file. The format follows the extension: .yaml and
// .yml are YAML, .toml is TOML, anything else is JSON. Keys must match the
// camelCase names exactly; any other key is ignored.
func Parse(path string, data []byte) (Record, error) {
	var rec Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return Record{}, fmt.Errorf("parse YAML: %w", err)
		}
	case ".toml":
		if err := decodeTOML(data, &rec); err != nil {
			return Record{}, fmt.Errorf("parse TOML: %w", err)
		}
	default:
		if err := decodeJSON(data, &rec); err != nil {
			return Record{}, fmt.Errorf("parse JSON: %w", err)
		}
	}
	return rec, nil
}

// encoding/json and BurntSushi/toml fall back to case-insensitive field
// matching, so both decoders go key by key against the exact tag names.
var (
	jsonKeys = recordKeys("json")
	tomlKeys = recordKeys("toml")
)

// recordKeys maps each tag name of Record to its field index.
func recordKeys(tag string) map[string]int {
	t := reflect.TypeOf(Record{})
	keys := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get(tag), ",")
		if name != "" && name != "-" {
			keys[name] = i
		}
	}
	return keys
}

func decodeJSON(data []byte, rec *Record) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	fields := reflect.ValueOf(rec).Elem()
	for key, value := range raw {
		idx, ok := jsonKeys[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, fields.Field(idx).Addr().Interface()); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	return nil
}

func decodeTOML(data []byte, rec *Record) error {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}

	fields := reflect.ValueOf(rec).Elem()
	for key, value := range raw {
		idx, ok := tomlKeys[key]
		if !ok {
			continue
		}
		if err := md.PrimitiveDecode(value, fields.Field(idx).Addr().Interface()); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	return nil
}

// ExplicitPath returns the value following the first --config in args.
// A trailing --config without a value is treated as absent.
func ExplicitPath(args []string) (string, bool) {
	for i, arg := range args {
		if arg == configFlag {
			if i+1 < len(args) {
				return args[i+1], true
			}
			return "", false
		}
	}
	return "", false
}
