package style

import (
	_ "embed"
	"io"

	"github.com/arthur-debert/amlpack/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultSheet []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config represents a complete style sheet
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Parse reads a YAML style sheet
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse style sheet")
	}
	for name, def := range cfg.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if _, ok := cfg.Colors[ref]; ref != "" && !ok {
				return nil, errors.Newf(errors.ErrConfigValid, "style %s uses undefined color %q", name, ref)
			}
		}
	}
	return &cfg, nil
}

// Sheet holds named styles bound to one output
type Sheet struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
}

// New binds cfg to w. Plain disables all colors and attributes.
func New(w io.Writer, cfg *Config, plain bool) *Sheet {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	s := &Sheet{renderer: r, styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		s.styles[name] = buildStyle(r, def, colors, plain)
	}
	return s
}

// Default binds the embedded style sheet to w
func Default(w io.Writer, plain bool) *Sheet {
	cfg, err := Parse(defaultSheet)
	if err != nil {
		panic("embedded style sheet is invalid: " + err.Error())
	}
	return New(w, cfg, plain)
}

func buildStyle(r *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor, plain bool) lipgloss.Style {
	style := r.NewStyle()

	// layout survives plain mode
	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	if plain {
		return style
	}

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colors[def.Background]; ok {
		style = style.Background(c)
	}
	return style
}

// Get returns the named style, or an empty style when it is not defined
func (s *Sheet) Get(name string) lipgloss.Style {
	if style, ok := s.styles[name]; ok {
		return style
	}
	return s.renderer.NewStyle()
}

// Render applies the named style to text
func (s *Sheet) Render(name, text string) string {
	return s.Get(name).Render(text)
}
