package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseListItems(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "bracketed markers",
			content: "[*]one\n[*]two",
			want:    []string{"one", "two"},
		},
		{
			name:    "bare star",
			content: "*one\n*two",
			want:    []string{"one", "two"},
		},
		{
			name:    "indented markers",
			content: "  [*] one\n\t[*] two",
			want:    []string{" one", " two"},
		},
		{
			name:    "unicode space before markers",
			content: "\u00a0[*]one\n\u2003[*]two\n\ufeff[li]three[/li]\u00a0",
			want:    []string{"one", "two", "three"},
		},
		{
			name:    "continuation lines",
			content: "[*]a\ncontinued\n[*]b",
			want:    []string{"a\ncontinued", "b"},
		},
		{
			name:    "li wrappers",
			content: "[li]one[/li]\n[li]two[/li]",
			want:    []string{"one", "two"},
		},
		{
			name:    "leading text lands in item zero",
			content: "intro\n[*]one",
			want:    []string{"intro", "one"},
		},
		{
			name:    "empty marker keeps an empty item",
			content: "[*]\n[*]two",
			want:    []string{"", "two"},
		},
		{
			name:    "continuation after empty item replaces it",
			content: "[*]\nlate\n[*]two",
			want:    []string{"late", "two"},
		},
		{
			name:    "empty body",
			content: "",
			want:    []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseListItems(tt.content))
		})
	}
}

func TestListRule(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		info     TagInfo
		wantTag  string
		wantType string
		hasType  bool
	}{
		{"plain list", "list", TagInfo{Tag: "list"}, "ul", "", false},
		{"list with type", "list", TagInfo{Tag: "list", Default: "a", HasDefault: true}, "ol", "a", true},
		{"list with empty default", "list", TagInfo{Tag: "list", HasDefault: true}, "ol", "", false},
		{"ul ignores default", "ul", TagInfo{Tag: "ul", Default: "a", HasDefault: true}, "ul", "", false},
		{"ol", "ol", TagInfo{Tag: "ol"}, "ol", "", false},
		{"ol with type", "ol", TagInfo{Tag: "ol", Default: "i", HasDefault: true}, "ol", "i", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &State{block: true}
			assert.True(t, listRule(tt.tag)(st, tt.info, "[*]x\n[*]y"))

			// open, 2 x (li open, inline, li close), close
			if assert.Len(t, st.Tokens, 8) {
				open := st.Tokens[0]
				assert.Equal(t, TokenOpen, open.Type)
				assert.Equal(t, tt.wantTag, open.Tag)
				typ, ok := open.Attr("type")
				assert.Equal(t, tt.hasType, ok)
				assert.Equal(t, tt.wantType, typ)

				assert.Equal(t, "x", st.Tokens[2].Content)
				assert.Equal(t, "y", st.Tokens[5].Content)

				closeTok := st.Tokens[7]
				assert.Equal(t, TokenClose, closeTok.Type)
				assert.Equal(t, tt.wantTag, closeTok.Tag)
				assert.Equal(t, 0, st.Level)
			}
		})
	}
}
