// Package i18n provides localized labels from flat or nested YAML catalogs.
package i18n

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed en.yml
var defaultCatalog []byte

// Catalog maps dotted keys such as "bbcode.ot" to labels.
type Catalog struct {
	messages map[string]string
}

// Parse reads a YAML catalog. Nested maps are flattened into dotted keys, so
//
//	bbcode:
//	  ot: Off Topic
//
// yields "bbcode.ot".
func Parse(data []byte) (*Catalog, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{messages: make(map[string]string)}
	flatten("", raw, c.messages)
	return c, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Load reads a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the embedded English catalog.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultCatalog)
		if err != nil {
			panic(err)
		}
		defaultCat = c
	})
	return defaultCat
}

// Translate returns the label for key, or the key itself when missing.
func (c *Catalog) Translate(key string) string {
	if msg, ok := c.messages[key]; ok {
		return msg
	}
	return key
}

// With returns a copy of the catalog with overrides applied.
func (c *Catalog) With(overrides map[string]string) *Catalog {
	out := &Catalog{messages: maps.Clone(c.messages)}
	maps.Copy(out.messages, overrides)
	return out
}

// Merge returns a copy of the catalog with every entry of other applied on
// top, so keys missing from other keep their current label.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	return c.With(other.messages)
}

// Keys returns all keys in sorted order.
func (c *Catalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.messages))
}
