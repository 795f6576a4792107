// allowlist.go decides which elements and attributes reach rendered output.
package bbcode

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// Entries are the allowlist entries this dialect contributes on top of the
// host defaults.
var Entries = []string{
	"div.highlight",
	"span.highlight",
	"div.sepquote",
	"span.smallfont",
	"blockquote.indent",
	"ol[type=*]",
	"hr",
	"hr[style]",
}

// MarkdownEntries are added when text runs are rendered as markdown.
var MarkdownEntries = []string{
	"strong",
	"em",
	"del",
	"code",
}

// baseEntries are the host defaults the dialect builds on.
var baseEntries = []string{
	"p",
	"br",
	"span",
	"div",
	"blockquote",
	"ul",
	"ol",
	"li",
	"a[name]",
	"a[href]",
}

// allowedSchemes are the URL schemes permitted in a[href].
var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
}

// Predicate judges one attribute. Predicates run before the static entries;
// Allow and Reject are final, Abstain falls through.
type Predicate func(element, attr, value string) Verdict

// Allowlist is a set of permitted element, class and attribute combinations
// plus custom predicates.
type Allowlist struct {
	elements map[string]bool
	attrs    map[string]map[string][]string // element -> attr -> values, "*" for any
	entries  []string
	custom   []Predicate
}

// NewAllowlist parses entries of the forms tag, tag.class, tag[attr],
// tag[attr=value] and tag[attr=*].
func NewAllowlist(entries ...string) (*Allowlist, error) {
	a := &Allowlist{
		elements: make(map[string]bool),
		attrs:    make(map[string]map[string][]string),
	}
	if err := a.Add(entries...); err != nil {
		return nil, err
	}
	return a, nil
}

// BaseAllowlist returns the host defaults with the dialect entries and the
// style sanitizer registered as a predicate.
func BaseAllowlist(s *Sanitizer) *Allowlist {
	a, err := NewAllowlist(baseEntries...)
	if err != nil {
		panic(err)
	}
	if err := a.Add(Entries...); err != nil {
		panic(err)
	}
	a.AddCustom(hrefPredicate)
	if s != nil {
		a.AddCustom(s.Check)
	}
	return a
}

// Add parses and adds entries.
func (a *Allowlist) Add(entries ...string) error {
	for _, entry := range entries {
		if err := a.add(entry); err != nil {
			return err
		}
		a.entries = append(a.entries, entry)
	}
	return nil
}

func (a *Allowlist) add(entry string) error {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return fmt.Errorf("empty allowlist entry")
	}

	if i := strings.IndexByte(entry, '['); i >= 0 {
		if !strings.HasSuffix(entry, "]") || i == 0 {
			return fmt.Errorf("invalid allowlist entry %q", entry)
		}
		tag := entry[:i]
		spec := entry[i+1 : len(entry)-1]
		attr, value, hasValue := strings.Cut(spec, "=")
		if attr == "" {
			return fmt.Errorf("invalid allowlist entry %q: missing attribute", entry)
		}
		if !hasValue {
			value = "*"
		}
		a.elements[tag] = true
		a.allowAttr(tag, attr, value)
		return nil
	}

	if tag, class, ok := strings.Cut(entry, "."); ok {
		if tag == "" || class == "" {
			return fmt.Errorf("invalid allowlist entry %q", entry)
		}
		a.elements[tag] = true
		a.allowAttr(tag, "class", class)
		return nil
	}

	a.elements[entry] = true
	return nil
}

func (a *Allowlist) allowAttr(tag, attr, value string) {
	byAttr, ok := a.attrs[tag]
	if !ok {
		byAttr = make(map[string][]string)
		a.attrs[tag] = byAttr
	}
	if !slices.Contains(byAttr[attr], value) {
		byAttr[attr] = append(byAttr[attr], value)
	}
}

// AddCustom registers a predicate consulted before the static entries.
func (a *Allowlist) AddCustom(p Predicate) {
	a.custom = append(a.custom, p)
}

// Entries returns the static entries in the order they were added.
func (a *Allowlist) Entries() []string {
	return slices.Clone(a.entries)
}

// AllowsElement reports whether an element may appear in output.
func (a *Allowlist) AllowsElement(tag string) bool {
	return a.elements[tag]
}

// AllowsAttr reports whether an attribute may appear on an element.
func (a *Allowlist) AllowsAttr(tag, attr, value string) bool {
	for _, p := range a.custom {
		switch p(tag, attr, value) {
		case Allow:
			return true
		case Reject:
			return false
		}
	}

	allowed, ok := a.attrs[tag][attr]
	if !ok {
		return false
	}
	if slices.Contains(allowed, "*") {
		return true
	}

	// class may carry several names; each must be allowed
	if attr == "class" {
		names := strings.Fields(value)
		if len(names) == 0 {
			return false
		}
		for _, name := range names {
			if !slices.Contains(allowed, name) {
				return false
			}
		}
		return true
	}
	return slices.Contains(allowed, value)
}

// hrefPredicate allows relative links and http, https and mailto URLs in a[href].
func hrefPredicate(element, attr, value string) Verdict {
	if element != "a" || attr != "href" {
		return Abstain
	}

	raw := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, strings.TrimSpace(value))

	u, err := url.Parse(raw)
	if err != nil {
		return Reject
	}
	if u.Scheme == "" || allowedSchemes[strings.ToLower(u.Scheme)] {
		return Allow
	}
	return Reject
}
