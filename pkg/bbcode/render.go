// render.go serializes token streams to HTML.
package bbcode

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderOptions configures a Renderer.
type RenderOptions struct {
	// Markdown renders text runs through goldmark instead of escaping them.
	Markdown bool
}

// Renderer turns tokens into HTML, consulting an Allowlist for every
// attribute. Rejected attributes are dropped; elements the allowlist does not
// know lose their wrapper but keep their children.
type Renderer struct {
	allow *Allowlist
	opts  RenderOptions
	log   *zap.Logger
}

// NewRenderer creates a renderer. A nil allowlist permits nothing beyond text.
func NewRenderer(allow *Allowlist, opts RenderOptions, log *zap.Logger) *Renderer {
	if allow == nil {
		allow, _ = NewAllowlist()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{allow: allow, opts: opts, log: log.Named("bbcode-renderer")}
}

// Render serializes tokens to an HTML fragment.
func (r *Renderer) Render(tokens []*Token) (string, error) {
	root := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	b := &treeBuilder{r: r, stack: []*html.Node{root}}
	for _, tok := range tokens {
		b.add(tok)
	}

	var sb strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return "", fmt.Errorf("failed to render html: %w", err)
		}
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// treeBuilder assembles an html.Node tree from a well-nested token stream.
type treeBuilder struct {
	r     *Renderer
	stack []*html.Node
}

func (b *treeBuilder) parent() *html.Node {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) add(tok *Token) {
	switch tok.Type {
	case TokenOpen:
		n := b.r.element(tok)
		b.parent().AppendChild(n)
		b.stack = append(b.stack, n)

	case TokenClose:
		if len(b.stack) == 1 {
			return
		}
		n := b.parent()
		b.stack = b.stack[:len(b.stack)-1]
		if !b.r.allow.AllowsElement(n.Data) {
			unwrap(n)
		}
		if tok.Block && len(b.stack) == 1 {
			b.parent().AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
		}

	case TokenLeaf:
		if !b.r.allow.AllowsElement(tok.Tag) {
			return
		}
		b.parent().AppendChild(b.r.element(tok))
		if tok.Block && len(b.stack) == 1 {
			b.parent().AppendChild(&html.Node{Type: html.TextNode, Data: "\n"})
		}

	case TokenText:
		b.r.appendText(b.parent(), tok.Content)

	case TokenInline:
		for _, child := range tok.Children {
			b.add(child)
		}
	}
}

// element builds a node for tok, keeping only allowed attributes.
func (r *Renderer) element(tok *Token) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tok.Tag,
		DataAtom: atom.Lookup([]byte(tok.Tag)),
	}
	for _, a := range tok.Attrs {
		if r.keepAttr(tok.Tag, a.Name, a.Value) {
			n.Attr = append(n.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}
	}
	return n
}

func (r *Renderer) keepAttr(tag, name, value string) bool {
	if r.allow.AllowsAttr(tag, name, value) {
		return true
	}
	r.log.Debug("Attribute dropped",
		zap.String("element", tag),
		zap.String("attr", name),
		zap.String("value", value))
	return false
}

// filter applies the allowlist to a parsed subtree: disallowed attributes are
// dropped, unknown elements are unwrapped, and comments or doctypes removed.
func (r *Renderer) filter(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
		case html.ElementNode:
			r.filter(c)
			kept := c.Attr[:0]
			for _, a := range c.Attr {
				if a.Namespace == "" && r.keepAttr(c.Data, a.Key, a.Val) {
					kept = append(kept, a)
				}
			}
			c.Attr = kept
			if !r.allow.AllowsElement(c.Data) {
				unwrap(c)
			}
		default:
			n.RemoveChild(c)
		}
		c = next
	}
}

func (r *Renderer) appendText(parent *html.Node, text string) {
	if !r.opts.Markdown {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		return
	}

	// goldmark trims the run, so edge whitespace is kept as plain text
	body := strings.TrimSpace(text)
	if body == "" {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		return
	}
	lead := text[:strings.Index(text, body)]
	trail := text[len(lead)+len(body):]

	rendered, err := markdownInline(body)
	if err != nil {
		r.log.Debug("Markdown conversion failed", zap.Error(err))
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		return
	}
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(rendered), context)
	if err != nil {
		r.log.Debug("Markdown output unparsable", zap.Error(err))
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: text})
		return
	}
	holder := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	for _, n := range nodes {
		holder.AppendChild(n)
	}
	r.filter(holder)

	if lead != "" {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: lead})
	}
	for c := holder.FirstChild; c != nil; {
		next := c.NextSibling
		holder.RemoveChild(c)
		parent.AppendChild(c)
		c = next
	}
	if trail != "" {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: trail})
	}
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
		c = next
	}
	parent.RemoveChild(n)
}
