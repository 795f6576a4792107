// tokens.go defines token types on both sides of tag expansion.
package bbcode

import (
	"encoding/json"
	"fmt"
)

// BracketTokenType represents token types for bracket syntax [tag]...[/tag].
type BracketTokenType int

const (
	BracketTokenText      BracketTokenType = iota // plain text between tags
	BracketTokenOpenTag                           // [tag], [tag=value] or [tag key=value]
	BracketTokenCloseTag                          // [/tag]
	BracketTokenSelfClose                         // [tag/]
)

// BracketToken represents a single token from bracket syntax scanning.
type BracketToken struct {
	Type            BracketTokenType
	Name            string            // lowercase tag name, set for tag tokens
	Default         string            // the x in [tag=x]
	HasDefault      bool              // true when the tag carried =x, even if x is empty
	Parameters      map[string]string // named parameters, set for OpenTag and SelfClose
	Text            string            // set for Text tokens
	Position        int               // byte offset in original input
	End             int               // byte offset just past the token
	OriginalTagText string            // the full original bracket text
}

// TokenType is the kind of an output token.
type TokenType int

const (
	TokenOpen   TokenType = iota // opens an element, nesting +1
	TokenClose                   // closes an element, nesting -1
	TokenText                    // literal text
	TokenLeaf                    // self-contained element such as hr or br
	TokenInline                  // raw inline content, expanded into Children by the inline pass
)

var tokenTypeNames = map[TokenType]string{
	TokenOpen:   "open",
	TokenClose:  "close",
	TokenText:   "text",
	TokenLeaf:   "leaf",
	TokenInline: "inline",
}

func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// MarshalJSON writes the type by name so token dumps stay readable.
func (t TokenType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Attr is one name/value pair on a token.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Token is one node in the output stream.
type Token struct {
	Type     TokenType `json:"type"`
	Tag      string    `json:"tag,omitempty"`
	Attrs    []Attr    `json:"attrs,omitempty"`
	Content  string    `json:"content,omitempty"`
	Nesting  int       `json:"nesting"`
	Level    int       `json:"level"`
	Block    bool      `json:"block,omitempty"`
	Map      []int     `json:"map,omitempty"` // [startLine, endLine] in the source
	Children []*Token  `json:"children,omitempty"`
}

// Attr returns the value of the named attribute.
func (t *Token) Attr(name string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, replacing an existing one in place so names stay unique.
func (t *Token) SetAttr(name, value string) {
	for i := range t.Attrs {
		if t.Attrs[i].Name == name {
			t.Attrs[i].Value = value
			return
		}
	}
	t.Attrs = append(t.Attrs, Attr{Name: name, Value: value})
}
