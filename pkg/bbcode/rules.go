// rules.go registers the fixed BBCode tag set.
package bbcode

import (
	"strings"

	"github.com/open-cli-collective/bbcode-cli/pkg/i18n"
)

// DefaultRegistry returns a registry with every supported tag. A nil
// translator uses the embedded English catalog.
func DefaultRegistry(tr Translator) *Registry {
	if tr == nil {
		tr = i18n.Default()
	}

	r := NewRegistry()

	r.MustRegister(
		inline("size", Wrap{Element: "span", Attr: "style", Value: func(ti TagInfo) string {
			return "font-size:" + strings.TrimSpace(ti.Default) + "%"
		}}),
		inline("font", Wrap{Element: "span", Attr: "style", Value: func(ti TagInfo) string {
			return "font-family:'" + strings.TrimSpace(ti.Default) + "'"
		}}),
		inline("color", Wrap{Element: "span", Attr: "style", Value: func(ti TagInfo) string {
			return "color:" + strings.TrimSpace(ti.Default)
		}}),
		inline("bgcolor", Wrap{Element: "span", Attr: "style", Value: func(ti TagInfo) string {
			return "background-color:" + strings.TrimSpace(ti.Default)
		}}),
		inline("highlight", Wrap{Element: "span", Attr: "class", Value: fixed("highlight")}),
		inline("small", Wrap{Element: "span", Attr: "style", Value: fixed("font-size:x-small")}),
		inline("aname", Wrap{Element: "a", Attr: "name"}),
		inline("jumpto", Wrap{Element: "a", Attr: "href", Value: func(ti TagInfo) string {
			return "#" + ti.Default
		}}),
	)

	for _, dir := range []string{"left", "right", "center"} {
		r.MustRegister(block(dir, Wrap{Element: "div", Attr: "style", Value: fixed("text-align:" + dir)}))
	}

	r.MustRegister(
		block("indent", Wrap{Element: "blockquote", Attr: "class", Value: fixed("indent")}),
		block("hr", Replace{Fn: replaceHR, Void: true}),
	)

	for _, tag := range []string{"ot", "edit"} {
		r.MustRegister(block(tag, sepquote(tr, tag)))
	}

	for _, tag := range []string{"list", "ul", "ol"} {
		r.MustRegister(block(tag, Replace{Fn: listRule(tag)}))
	}

	return r
}

func inline(tag string, e Expansion) Rule {
	return Rule{Tag: tag, Kind: KindInline, Expansion: e}
}

func block(tag string, e Expansion) Rule {
	return Rule{Tag: tag, Kind: KindBlock, Expansion: e}
}

func fixed(value string) func(TagInfo) string {
	return func(TagInfo) string { return value }
}

// replaceHR emits a single rule line. A style parameter is passed through
// untouched; the sanitizer decides at render time whether it survives.
func replaceHR(st *State, info TagInfo, _ string) bool {
	tok := st.Push(TokenLeaf, "hr")
	tok.Map = info.lines()
	if style, ok := info.Param("style"); ok {
		tok.SetAttr("style", style)
	}
	return true
}

// sepquote wraps content in a side note box headed by a localized label.
func sepquote(tr Translator, tag string) Hooks {
	return Hooks{
		Before: func(st *State, info TagInfo) {
			box := st.Push(TokenOpen, "div")
			box.SetAttr("class", "sepquote")
			box.Map = info.lines()

			label := st.Push(TokenOpen, "span")
			label.Block = false
			label.SetAttr("class", "smallfont")

			text := st.Push(TokenText, "")
			text.Content = tr.Translate("bbcode." + tag)

			st.Push(TokenClose, "span").Block = false

			st.Push(TokenLeaf, "br")
			st.Push(TokenLeaf, "br")
		},
		After: func(st *State, _ TagInfo) {
			st.Push(TokenClose, "div")
		},
	}
}
