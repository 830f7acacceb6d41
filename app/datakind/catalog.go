package datakind

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"
)

// Entry is one selectable option as offered on the form.
type Entry struct {
	Option Option `json:"option"`
	Label  string `json:"label"`
}

// Catalog lists the options a form offers and the data it starts with.
type Catalog struct {
	Entries []Entry
	Default Submission
}

// DefaultCatalog offers every option with its built-in label and starts
// with nothing selected.
func DefaultCatalog() *Catalog {
	entries := make([]Entry, 0, lastOption)
	for _, o := range Options() {
		entries = append(entries, Entry{Option: o, Label: o.Label()})
	}
	return &Catalog{
		Entries: entries,
		Default: Submission{Option: OptionNone},
	}
}

// Label returns the catalog label for o, falling back to the built-in one.
func (c *Catalog) Label(o Option) string {
	if c != nil {
		for _, e := range c.Entries {
			if e.Option == o {
				return e.Label
			}
		}
	}
	return o.Label()
}

// Offers reports whether o is selectable in this catalog.
func (c *Catalog) Offers(o Option) bool {
	if c == nil {
		return false
	}
	for _, e := range c.Entries {
		if e.Option == o {
			return true
		}
	}
	return false
}

// DefaultValues returns the default values joined for the text field.
func (c *Catalog) DefaultValues() string {
	if c == nil {
		return ""
	}
	return strings.Join(c.Default.Values, ",")
}

// ── file format ──────────────────────────────────────────────────────────────

type catalogFile struct {
	Options []catalogOption `yaml:"options" toml:"options" json:"options"`
	Default *catalogDefault `yaml:"default" toml:"default" json:"default"`
}

type catalogOption struct {
	Option int    `yaml:"option" toml:"option" json:"option"`
	Label  string `yaml:"label" toml:"label" json:"label"`
}

type catalogDefault struct {
	Option int      `yaml:"option" toml:"option" json:"option"`
	Values []string `yaml:"values" toml:"values" json:"values"`
}

// LoadCatalog reads a catalog file. The format follows the extension:
// .yaml/.yml, .toml or .json.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("datakind: read catalog: %w", err)
	}
	cat, err := ParseCatalog(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("datakind: catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes a catalog document in the given format ("yaml",
// "yml", "toml" or "json"). Listed options replace the built-in list in the
// order given; an empty list keeps every option. Labels are reduced to plain
// text.
func ParseCatalog(data []byte, format string) (*Catalog, error) {
	var doc catalogFile
	var err error
	switch strings.ToLower(format) {
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &doc)
	case "toml":
		_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	case "json":
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	cat := DefaultCatalog()
	if len(doc.Options) > 0 {
		policy := bluemonday.StrictPolicy()
		seen := make(map[Option]bool, len(doc.Options))
		cat.Entries = cat.Entries[:0]
		for _, raw := range doc.Options {
			o := Option(raw.Option)
			if !o.Valid() {
				return nil, fmt.Errorf("%w: %d", ErrUnknownOption, raw.Option)
			}
			if seen[o] {
				return nil, fmt.Errorf("duplicate option %d", raw.Option)
			}
			seen[o] = true

			label := strings.TrimSpace(html.UnescapeString(policy.Sanitize(raw.Label)))
			if label == "" {
				label = o.Label()
			}
			cat.Entries = append(cat.Entries, Entry{Option: o, Label: label})
		}
	}

	if doc.Default != nil {
		o := Option(doc.Default.Option)
		if o != OptionNone && !cat.Offers(o) {
			return nil, fmt.Errorf("default option %d is not offered", doc.Default.Option)
		}
		cat.Default = Submission{Option: o, Values: doc.Default.Values}
	}
	return cat, nil
}
