package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	// PathEnv overrides the preference file location.
	PathEnv = "KISPREFS_PREFS"
	// DefaultRelPath is the preference file location relative to the user config dir.
	DefaultRelPath = "kisprefs/prefs.toml"
)

// DefaultPath returns the preference file path: $KISPREFS_PREFS if set,
// otherwise <user config dir>/kisprefs/prefs.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, DefaultRelPath), nil
}

// FileStore is a Store backed by a TOML file through viper.
// Nothing touches disk until Load or Save is called.
type FileStore struct {
	path   string
	v      *viper.Viper
	dirty  bool
	tracer oteltrace.Tracer
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

// Option configures a FileStore.
type Option func(*FileStore)

// WithTracer sets the tracer used for Load/Save spans.
// Defaults to the global OpenTelemetry tracer provider.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *FileStore) { s.tracer = t }
}

// WithDefaults registers fallback values for keys absent from the file.
func WithDefaults(defaults map[string]string) Option {
	return func(s *FileStore) {
		for k, v := range defaults {
			s.v.SetDefault(k, v)
		}
	}
}

// NewFileStore creates a store for the file at path.
func NewFileStore(path string, opts ...Option) *FileStore {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(path)
	s := &FileStore{
		path:   path,
		v:      v,
		tracer: otel.Tracer("kisprefs/prefs"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the preference file. A missing file is not an error; the store
// then serves defaults only.
func (s *FileStore) Load(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "prefs.Load",
		oteltrace.WithAttributes(attribute.String("prefs.path", s.path)))
	defer span.End()

	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			span.SetAttributes(attribute.Bool("prefs.missing", true))
			return nil
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("read prefs %s: %w", s.path, err)
	}
	span.SetAttributes(attribute.Int("prefs.keys", len(s.v.AllKeys())))
	return nil
}

// FetchOpt implements Store.
func (s *FileStore) FetchOpt(key string) string {
	return s.v.GetString(normalizeKey(key))
}

// SetOpt implements Store.
func (s *FileStore) SetOpt(key, value string, dirty bool) {
	s.v.Set(normalizeKey(key), value)
	if dirty {
		s.dirty = true
	}
}

// Dirty reports whether any dirty write happened since the last Save.
func (s *FileStore) Dirty() bool {
	return s.dirty
}

// Save writes all preferences to disk when dirty, creating the parent directory.
func (s *FileStore) Save(ctx context.Context) error {
	_, span := s.tracer.Start(ctx, "prefs.Save",
		oteltrace.WithAttributes(
			attribute.String("prefs.path", s.path),
			attribute.Bool("prefs.dirty", s.dirty),
		))
	defer span.End()

	if !s.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("mkdir prefs dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("write prefs %s: %w", s.path, err)
	}
	log.Printf("prefs: saved %d keys to %s", len(s.v.AllKeys()), s.path)
	s.dirty = false
	return nil
}

// normalizeKey lowercases keys; viper is case-insensitive and treats "."
// as a nesting separator, which preference keys never use.
func normalizeKey(key string) string {
	return strings.ToLower(strings.ReplaceAll(key, ".", "_"))
}
