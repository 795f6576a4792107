// rule.go defines tag rules and their expansion variants.
package bbcode

import (
	"errors"
	"fmt"
)

// Kind says whether a rule applies to inline or block tag spans.
type Kind int

const (
	KindInline Kind = iota
	KindBlock
)

func (k Kind) String() string {
	switch k {
	case KindInline:
		return "inline"
	case KindBlock:
		return "block"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TagInfo is the parsed form of one matched tag occurrence.
type TagInfo struct {
	Tag        string
	Default    string // the x in [tag=x]
	HasDefault bool
	Params     map[string]string
	StartLine  int // 0-based line of the opening tag
	EndLine    int // 0-based line of the closing tag, or StartLine for void tags
}

// Param returns a named parameter.
func (ti TagInfo) Param(name string) (string, bool) {
	v, ok := ti.Params[name]
	return v, ok
}

func (ti TagInfo) lines() []int {
	return []int{ti.StartLine, ti.EndLine}
}

// Expansion is the closed set of rule payloads: Wrap, Replace or Hooks.
type Expansion interface {
	expansion()
}

// Wrap turns the tag into an element with one computed attribute around the
// processed inner content.
type Wrap struct {
	Element string
	Attr    string                // empty means no attribute is emitted
	Value   func(TagInfo) string // nil means the default parameter verbatim
}

// Replace pushes the whole token sequence for the tag itself. Fn returns false
// to decline, in which case the tag is kept as literal text.
type Replace struct {
	Fn   func(st *State, info TagInfo, content string) bool
	Void bool // tag needs no closing tag
}

// Hooks push fixed token sequences before and after the host-processed inner content.
type Hooks struct {
	Before func(st *State, info TagInfo)
	After  func(st *State, info TagInfo)
}

func (Wrap) expansion()    {}
func (Replace) expansion() {}
func (Hooks) expansion()   {}

func (w Wrap) value(info TagInfo) string {
	if w.Value == nil {
		return info.Default
	}
	return w.Value(info)
}

// Rule is a named tag descriptor.
type Rule struct {
	Tag       string
	Kind      Kind
	Expansion Expansion
}

// Validate checks that the rule carries exactly one usable payload.
func (r Rule) Validate() error {
	if r.Tag == "" {
		return errors.New("rule tag is required")
	}
	switch e := r.Expansion.(type) {
	case nil:
		return fmt.Errorf("rule %q has no expansion", r.Tag)
	case Wrap:
		if e.Element == "" {
			return fmt.Errorf("wrap rule %q has no element", r.Tag)
		}
	case Replace:
		if e.Fn == nil {
			return fmt.Errorf("replace rule %q has no function", r.Tag)
		}
	case Hooks:
		if e.Before == nil && e.After == nil {
			return fmt.Errorf("hooks rule %q has neither before nor after", r.Tag)
		}
	}
	return nil
}

// Translator resolves localized labels such as "bbcode.ot".
type Translator interface {
	Translate(key string) string
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(key string) string

// Translate calls f(key).
func (f TranslatorFunc) Translate(key string) string {
	return f(key)
}
