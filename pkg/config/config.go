package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Security is the configuration surface the engine consumes. It is populated
// once at startup and treated as read-only afterwards.
type Security struct {
	// AllowedExtensions lists file extensions (with leading dot) accepted by
	// filename validation. Comparison is case-insensitive.
	AllowedExtensions []string `env:"GATEKIT_ALLOWED_EXTENSIONS" envSeparator:","`

	// MaxUploadBytes is the global ceiling on file content size. It is
	// authoritative even when a caller supplies a larger per-call maximum.
	MaxUploadBytes int64 `env:"GATEKIT_MAX_UPLOAD_BYTES" envDefault:"500000000"`

	// PatternFile optionally points at a YAML file of name -> regex entries
	// merged over the built-in defaults.
	PatternFile string `env:"GATEKIT_PATTERN_FILE"`

	patterns map[string]string
}

var loadEnvOnce sync.Once

// Load builds a Security from the environment, honoring a .env file if one
// exists, and merges the optional pattern file over the built-in defaults.
func Load() (Security, error) {
	loadEnvOnce.Do(func() {
		// The .env file is optional; absence is not an error.
		_ = godotenv.Load()
	})

	sec := Default()
	if err := env.Parse(&sec); err != nil {
		return Security{}, errors.Join(ErrParsingEnv, err)
	}
	if len(sec.AllowedExtensions) == 0 {
		sec.AllowedExtensions = defaultExtensions()
	}

	if sec.PatternFile != "" {
		overrides, err := loadPatternFile(sec.PatternFile)
		if err != nil {
			return Security{}, err
		}
		for name, expr := range overrides {
			sec.patterns[name] = expr
		}
	}
	return sec, nil
}

// Default returns a Security with built-in defaults and no environment input.
func Default() Security {
	patterns := make(map[string]string, len(DefaultPatterns))
	for name, expr := range DefaultPatterns {
		patterns[name] = expr
	}
	return Security{
		AllowedExtensions: defaultExtensions(),
		MaxUploadBytes:    500_000_000,
		patterns:          patterns,
	}
}

// Pattern returns the whitelist regex registered under name.
func (s Security) Pattern(name string) (string, bool) {
	expr, ok := s.patterns[name]
	return expr, ok
}

// SetPattern registers or overrides a named whitelist pattern. The expression
// must be a valid regular expression.
func (s *Security) SetPattern(name, expr string) error {
	if _, err := regexp.Compile(expr); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidPattern, name, err)
	}
	if s.patterns == nil {
		s.patterns = make(map[string]string)
	}
	s.patterns[name] = expr
	return nil
}

func loadPatternFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrPatternFile, err)
	}
	out := make(map[string]string)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.Join(ErrPatternFile, err)
	}
	for name, expr := range out {
		if _, err := regexp.Compile(expr); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, name, err)
		}
	}
	return out, nil
}

func defaultExtensions() []string {
	return []string{
		".zip", ".pdf", ".doc", ".docx", ".ppt", ".pptx", ".tar", ".gz",
		".tgz", ".jpg", ".jpeg", ".gif", ".png", ".txt", ".xml", ".css",
		".html", ".csv", ".rtf",
	}
}
