package bbcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Rule{Tag: "Shout", Kind: KindInline, Expansion: Wrap{Element: "strong"}}))

	for _, name := range []string{"shout", "SHOUT", "Shout"} {
		rule, ok := r.Lookup(name, KindInline)
		assert.True(t, ok, name)
		assert.Equal(t, "shout", rule.Tag)
	}

	_, ok := r.Lookup("shout", KindBlock)
	assert.False(t, ok, "inline rule must not match block lookups")

	_, ok = r.Lookup("unknown", KindInline)
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Rule{Tag: "x", Kind: KindBlock, Expansion: Wrap{Element: "div"}}))

	err := r.Register(Rule{Tag: "X", Kind: KindBlock, Expansion: Wrap{Element: "section"}})
	require.Error(t, err)

	var dup *DuplicateRuleError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "x", dup.Tag)
	assert.Equal(t, KindBlock, dup.Kind)
	assert.Contains(t, err.Error(), `duplicate block rule for tag "x"`)

	// the first registration is kept
	rule, _ := r.Lookup("x", KindBlock)
	assert.Equal(t, "div", rule.Expansion.(Wrap).Element)

	// same tag, other kind is fine
	assert.NoError(t, r.Register(Rule{Tag: "x", Kind: KindInline, Expansion: Wrap{Element: "span"}}))
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_InvalidRules(t *testing.T) {
	noop := func(*State, TagInfo) {}

	tests := []struct {
		name    string
		rule    Rule
		wantErr string
	}{
		{"no tag", Rule{Expansion: Wrap{Element: "span"}}, "rule tag is required"},
		{"no expansion", Rule{Tag: "a"}, "has no expansion"},
		{"wrap without element", Rule{Tag: "a", Expansion: Wrap{}}, "has no element"},
		{"replace without fn", Rule{Tag: "a", Expansion: Replace{}}, "has no function"},
		{"empty hooks", Rule{Tag: "a", Expansion: Hooks{}}, "neither before nor after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.rule)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.NoError(t, NewRegistry().Register(Rule{Tag: "a", Expansion: Hooks{After: noop}}))
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(Rule{Tag: "a", Expansion: Wrap{Element: "span"}})
	assert.Panics(t, func() {
		r.MustRegister(Rule{Tag: "a", Expansion: Wrap{Element: "span"}})
	})
}

func TestDefaultRegistry_Tags(t *testing.T) {
	r := DefaultRegistry(nil)

	var inlineTags, blockTags []string
	for _, rule := range r.Rules() {
		switch rule.Kind {
		case KindInline:
			inlineTags = append(inlineTags, rule.Tag)
		case KindBlock:
			blockTags = append(blockTags, rule.Tag)
		}
	}

	assert.Equal(t, []string{"aname", "bgcolor", "color", "font", "highlight", "jumpto", "size", "small"}, inlineTags)
	assert.Equal(t, []string{"center", "edit", "hr", "indent", "left", "list", "ol", "ot", "right", "ul"}, blockTags)
	assert.Equal(t, 18, r.Len())
}

func TestDefaultRegistry_Expansions(t *testing.T) {
	r := DefaultRegistry(nil)

	tests := []struct {
		tag  string
		kind Kind
		want string
	}{
		{"size", KindInline, "wrap"},
		{"highlight", KindInline, "wrap"},
		{"center", KindBlock, "wrap"},
		{"indent", KindBlock, "wrap"},
		{"hr", KindBlock, "replace"},
		{"list", KindBlock, "replace"},
		{"ot", KindBlock, "hooks"},
		{"edit", KindBlock, "hooks"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			rule, ok := r.Lookup(tt.tag, tt.kind)
			require.True(t, ok)

			var got string
			switch e := rule.Expansion.(type) {
			case Wrap:
				got = "wrap"
			case Replace:
				got = "replace"
				assert.Equal(t, tt.tag == "hr", e.Void)
			case Hooks:
				got = "hooks"
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "inline", KindInline.String())
	assert.Equal(t, "block", KindBlock.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
