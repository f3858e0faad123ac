// Package catalog provides a typed, read-only view over per-style suitability
// metadata. Malformed entries fail at load time instead of silently scoring
// as "not applicable".
package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kimminjae413/hairgator-hairfolio-sub001/internal/analyzer"
)

// Tier is an ordinal suitability rating attached to a style for a specific
// face shape or personal color.
type Tier string

const (
	TierGood      Tier = "good"
	TierExcellent Tier = "excellent"
)

// Category tells which classification axis a style is scored against.
type Category string

const (
	// CategoryCut styles (haircuts) score against the face shape only.
	CategoryCut Category = "cut"
	// CategoryColor styles (color treatments) score against the personal color only.
	CategoryColor Category = "color"
)

// Style is one catalog entry with its suitability metadata.
// A missing map entry means "not evaluated for this value", not "poor".
type Style struct {
	ID             string                          `json:"id"`
	Name           string                          `json:"name"`
	Category       Category                        `json:"category"`
	FaceShapes     map[analyzer.FaceShape]Tier     `json:"faceShapes,omitempty"`
	PersonalColors map[analyzer.PersonalColor]Tier `json:"personalColors,omitempty"`
}

// Catalog is an immutable set of validated styles.
type Catalog struct {
	styles []Style
	byID   map[string]*Style
}

// rawStyle mirrors the YAML catalog document before validation.
type rawStyle struct {
	ID             string            `yaml:"id"`
	Name           string            `yaml:"name"`
	Category       string            `yaml:"category"`
	FaceShapes     map[string]string `yaml:"face_shapes"`
	PersonalColors map[string]string `yaml:"personal_colors"`
}

type rawCatalog struct {
	Styles []rawStyle `yaml:"styles"`
}

// Parse loads and validates a YAML catalog document. Any unknown category,
// face shape, personal color or tier fails with the offending style named.
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not unmarshal catalog: %w", err)
	}
	if len(raw.Styles) == 0 {
		return nil, fmt.Errorf("catalog contains no styles")
	}

	catalog := &Catalog{
		styles: make([]Style, 0, len(raw.Styles)),
		byID:   make(map[string]*Style, len(raw.Styles)),
	}

	for i, rs := range raw.Styles {
		style, err := validateStyle(rs)
		if err != nil {
			return nil, fmt.Errorf("style %d (%q): %w", i, rs.ID, err)
		}
		if _, exists := catalog.byID[style.ID]; exists {
			return nil, fmt.Errorf("style %d: duplicate id %q", i, style.ID)
		}
		catalog.styles = append(catalog.styles, style)
		catalog.byID[style.ID] = &catalog.styles[len(catalog.styles)-1]
	}

	return catalog, nil
}

// Load reads and parses a catalog from a reader.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads and parses a catalog from a file path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("could not open catalog file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// validateStyle converts one raw style into its typed form, rejecting every
// unrecognized enum value.
func validateStyle(rs rawStyle) (Style, error) {
	if rs.ID == "" {
		return Style{}, fmt.Errorf("missing id")
	}
	if rs.Name == "" {
		return Style{}, fmt.Errorf("missing name")
	}

	category := Category(rs.Category)
	if category != CategoryCut && category != CategoryColor {
		return Style{}, fmt.Errorf("unknown category %q", rs.Category)
	}

	style := Style{ID: rs.ID, Name: rs.Name, Category: category}

	if len(rs.FaceShapes) > 0 {
		style.FaceShapes = make(map[analyzer.FaceShape]Tier, len(rs.FaceShapes))
		for key, value := range rs.FaceShapes {
			shape, err := analyzer.ParseFaceShape(key)
			if err != nil {
				return Style{}, fmt.Errorf("face_shapes: %w", err)
			}
			tier, err := parseTier(value)
			if err != nil {
				return Style{}, fmt.Errorf("face_shapes[%s]: %w", key, err)
			}
			style.FaceShapes[shape] = tier
		}
	}

	if len(rs.PersonalColors) > 0 {
		style.PersonalColors = make(map[analyzer.PersonalColor]Tier, len(rs.PersonalColors))
		for key, value := range rs.PersonalColors {
			color, err := analyzer.ParsePersonalColor(key)
			if err != nil {
				return Style{}, fmt.Errorf("personal_colors: %w", err)
			}
			tier, err := parseTier(value)
			if err != nil {
				return Style{}, fmt.Errorf("personal_colors[%s]: %w", key, err)
			}
			style.PersonalColors[color] = tier
		}
	}

	return style, nil
}

// parseTier validates a raw tier string.
func parseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierGood, TierExcellent:
		return Tier(s), nil
	default:
		return "", fmt.Errorf("unknown tier %q", s)
	}
}

// Styles returns all styles in catalog order.
func (c *Catalog) Styles() []Style {
	return c.styles
}

// Get returns the style with the given id.
func (c *Catalog) Get(id string) (*Style, bool) {
	style, ok := c.byID[id]
	return style, ok
}

// Search returns styles whose normalized name contains the normalized query.
// An empty query matches everything.
func (c *Catalog) Search(query string) []Style {
	if query == "" {
		return c.styles
	}

	normalized := NormalizeStyleName(query)
	var matches []Style
	for _, style := range c.styles {
		if containsNormalized(style.Name, normalized) {
			matches = append(matches, style)
		}
	}
	return matches
}

// Len returns the number of styles.
func (c *Catalog) Len() int {
	return len(c.styles)
}
