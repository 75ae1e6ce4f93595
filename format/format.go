package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	TOMLFormat
	EnvFormat
)

var (
	// ErrBadFormat reports a format name that ParseFormat does not know.
	ErrBadFormat = errors.New("bad format")
	// ErrUnsupported reports a file path whose extension maps to no format.
	ErrUnsupported = errors.New("unsupported file format")
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
		"yml":    YAMLFormat,
		"t":      TOMLFormat,
		"toml":   TOMLFormat,
		"e":      EnvFormat,
		"env":    EnvFormat,
		"dotenv": EnvFormat,
	}[strings.ToLower(v)]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath resolves the format of a file path from its extension.
// Matching is case-insensitive over .json, .yaml, .yml, .toml and .env;
// a bare ".env" file name counts as an env extension.
func FromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := map[string]Format{
		".json": JSONFormat,
		".yaml": YAMLFormat,
		".yml":  YAMLFormat,
		".toml": TOMLFormat,
		".env":  EnvFormat,
	}[ext]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q has extension %q", ErrUnsupported, path, ext)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case EnvFormat:
		return []byte("env"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case TOMLFormat:
		return ".toml"
	case EnvFormat:
		return ".env"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, TOMLFormat, EnvFormat}
}
