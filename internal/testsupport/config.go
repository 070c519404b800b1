package testsupport

import (
	"path/filepath"
	"testing"

	"fitframes/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose log directory lives in a per-test temp
// directory. It applies any provided options on top of the defaults.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithFileLogging enables the fitframes.log sink in the temp log directory.
func WithFileLogging() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = true
	}
}

// WithStatusMessages toggles converter status logging.
func WithStatusMessages(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Converter.StatusMessages = enabled
	}
}

// WithProjection overrides the default EPSG pair.
func WithProjection(source, target int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Projection.SourceEPSG = source
		b.cfg.Projection.TargetEPSG = target
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
