package themes

import (
	stderrors "errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/vista/pkg/errors"
)

// FormatVersion is the theme resource format this package reads. The version
// field in a resource must have the same major version.
const FormatVersion = "v1"

type document struct {
	Version string      `yaml:"version"`
	Themes  []themeSpec `yaml:"themes"`
}

type themeSpec struct {
	Target  string       `yaml:"target"`
	BasedOn string       `yaml:"basedOn,omitempty"`
	Setters []setterSpec `yaml:"setters,omitempty"`
}

type setterSpec struct {
	Property string `yaml:"property"`
	Color    string `yaml:"color,omitempty"`
	Value    any    `yaml:"value,omitempty"`
}

// Set is a group of themes loaded from one resource, keyed by target type.
type Set struct {
	themes map[string]*ControlTheme
	order  []string
}

// ForTarget returns the theme for target, or nil when the set has none.
func (s *Set) ForTarget(target string) *ControlTheme {
	if s == nil {
		return nil
	}
	return s.themes[target]
}

// Targets returns the target types in resource order.
func (s *Set) Targets() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// Len returns the number of themes in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.themes)
}

// Load reads and parses the theme resource at path.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme resource: %w", err)
	}
	return Parse(data, path)
}

// LoadOptional reads the theme resource at path if present. A missing file
// yields an empty set. An invalid file also yields an empty set, after the
// failure is reported through the global error handler, so an optional
// resource can never take the application down.
func LoadOptional(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Set{}, nil
		}
		return nil, fmt.Errorf("failed to read theme resource: %w", err)
	}
	set, err := Parse(data, path)
	if err != nil {
		var terr *errors.ThemeError
		if stderrors.As(err, &terr) {
			errors.ReportThemeError(terr)
		}
		return &Set{}, nil
	}
	return set, nil
}

// Parse decodes and validates a theme resource. path is used in error
// reporting only.
func Parse(data []byte, path string) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &errors.ThemeError{Path: path, Reason: "parse failure", Err: err}
	}

	if doc.Version == "" {
		return nil, &errors.ThemeError{Path: path, Reason: "missing format version"}
	}
	if !semver.IsValid(doc.Version) || semver.Major(doc.Version) != FormatVersion {
		return nil, &errors.ThemeError{
			Path:   path,
			Reason: fmt.Sprintf("unsupported format version %q (want major %s)", doc.Version, FormatVersion),
		}
	}

	set := &Set{themes: make(map[string]*ControlTheme, len(doc.Themes))}
	for i, spec := range doc.Themes {
		if strings.TrimSpace(spec.Target) == "" {
			return nil, &errors.ThemeError{Path: path, Reason: fmt.Sprintf("theme %d: missing target type", i)}
		}
		if _, exists := set.themes[spec.Target]; exists {
			return nil, &errors.ThemeError{Path: path, Reason: fmt.Sprintf("duplicate target type %q", spec.Target)}
		}

		setters := make([]Setter, 0, len(spec.Setters))
		for _, ss := range spec.Setters {
			setter, err := buildSetter(ss, spec.Target, path)
			if err != nil {
				return nil, err
			}
			setters = append(setters, setter)
		}

		set.themes[spec.Target] = New(spec.Target, setters...)
		set.order = append(set.order, spec.Target)
	}

	// Link and check the basedOn chains once every target is known.
	for _, spec := range doc.Themes {
		if spec.BasedOn == "" {
			continue
		}
		if spec.BasedOn == spec.Target {
			return nil, &errors.ThemeError{
				Path:   path,
				Reason: fmt.Sprintf("target %q cannot be based on itself", spec.Target),
			}
		}
		parent, ok := set.themes[spec.BasedOn]
		if !ok {
			return nil, &errors.ThemeError{
				Path:   path,
				Reason: fmt.Sprintf("target %q based on unknown target %q", spec.Target, spec.BasedOn),
			}
		}
		set.themes[spec.Target].BasedOn = parent
	}
	for target, theme := range set.themes {
		depth := 0
		for t := theme.BasedOn; t != nil; t = t.BasedOn {
			depth++
			if depth > len(set.themes) {
				return nil, &errors.ThemeError{
					Path:   path,
					Reason: fmt.Sprintf("based-on cycle involving target %q", target),
				}
			}
		}
	}

	return set, nil
}

func buildSetter(ss setterSpec, target, path string) (Setter, error) {
	if strings.TrimSpace(ss.Property) == "" {
		return Setter{}, &errors.ThemeError{
			Path:   path,
			Reason: fmt.Sprintf("target %q: setter with empty property", target),
		}
	}
	if ss.Color != "" && ss.Value != nil {
		return Setter{}, &errors.ThemeError{
			Path:   path,
			Reason: fmt.Sprintf("target %q: setter %q has both color and value", target, ss.Property),
		}
	}
	if ss.Color != "" {
		c, ok := Color(ss.Color)
		if !ok {
			return Setter{}, &errors.ThemeError{
				Path:   path,
				Reason: fmt.Sprintf("target %q: unknown color %q for property %q", target, ss.Color, ss.Property),
			}
		}
		return Setter{Property: ss.Property, Value: c}, nil
	}
	return Setter{Property: ss.Property, Value: ss.Value}, nil
}

// Color resolves a color value: an SVG 1.1 color name or #RGB/#RRGGBB hex.
func Color(value string) (color.RGBA, bool) {
	if strings.HasPrefix(value, "#") {
		return parseHexColor(value[1:])
	}
	c, ok := colornames.Map[strings.ToLower(value)]
	return c, ok
}

func parseHexColor(hex string) (color.RGBA, bool) {
	switch len(hex) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded[:])
	case 6:
	default:
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
