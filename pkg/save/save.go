package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/woook/paneldump/pkg/errors"
	"github.com/woook/paneldump/pkg/logging"
	"github.com/woook/paneldump/pkg/panels"
)

// filePermissions is the permission for written dump files.
const filePermissions = 0644

// Panels writes the panel list using the given options. Exactly one of
// WithPath or WithWriter must be configured.
func Panels(ps panels.Panels, opts ...Option) error {
	options := Defaults().Apply(opts...)

	if !options.Format().IsValid() {
		return &errors.ValidationError{
			Field:   "format",
			Value:   options.Format(),
			Message: "unknown output format",
		}
	}

	data, err := marshal(ps, options.Format())
	if err != nil {
		return err
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return errors.WrapIO("write", "panel dump", err)
		}
		return nil
	}

	path := options.Path()
	if path == "" {
		return &errors.ConfigError{
			Component: "save",
			Message:   "no path or writer configured for saving",
		}
	}

	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Info().
		Str("path", path).
		Str("format", options.Format().String()).
		Int("panels", len(ps)).
		Msg("Panel dump written")

	return nil
}

// Load reads a panel dump back in, detecting the format from the file
// extension (.yaml/.yml, otherwise JSON).
func Load(path string) (panels.Panels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var ps panels.Panels
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ps); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		if err := json.Unmarshal(data, &ps); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	}

	return ps, nil
}

// marshal serializes the panel list in the requested format.
func marshal(ps panels.Panels, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(ps)
		if err != nil {
			return nil, errors.WrapParse("yaml", "panel dump", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(ps, "", "    ")
		if err != nil {
			return nil, errors.WrapParse("json", "panel dump", err)
		}
		return append(data, '\n'), nil
	}
}
