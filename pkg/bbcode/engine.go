// Package bbcode converts BBCode markup into token streams and sanitized HTML.
//
// A Registry maps tag names to rules. A Parser uses it to turn a document into
// tokens, and a Renderer serializes those tokens, asking an Allowlist, and
// through it the style Sanitizer, whether each attribute may be emitted.
// Engine wires the three together:
//
//	e := bbcode.NewEngine()
//	out, err := e.HTML("[color=#ff0000]text[/color]")
package bbcode

import (
	"go.uber.org/zap"
)

type engineOptions struct {
	log        *zap.Logger
	translator Translator
	registry   *Registry
	render     RenderOptions
}

// Option configures an Engine.
type Option func(*engineOptions)

// WithLogger sets the logger that receives sanitizer diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(o *engineOptions) { o.log = log }
}

// WithTranslator sets the source of localized labels.
func WithTranslator(tr Translator) Option {
	return func(o *engineOptions) { o.translator = tr }
}

// WithRegistry replaces the default rule set.
func WithRegistry(r *Registry) Option {
	return func(o *engineOptions) { o.registry = r }
}

// WithMarkdown renders text runs as markdown.
func WithMarkdown(enabled bool) Option {
	return func(o *engineOptions) { o.render.Markdown = enabled }
}

// Engine bundles a registry, parser and renderer. It is read-only after
// construction and safe for concurrent use.
type Engine struct {
	registry  *Registry
	parser    *Parser
	sanitizer *Sanitizer
	allowlist *Allowlist
	renderer  *Renderer
}

// NewEngine creates an engine with the default rule set unless overridden.
func NewEngine(opts ...Option) *Engine {
	o := &engineOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.registry == nil {
		o.registry = DefaultRegistry(o.translator)
	}

	sanitizer := NewSanitizer(o.log)
	allowlist := BaseAllowlist(sanitizer)
	if o.render.Markdown {
		if err := allowlist.Add(MarkdownEntries...); err != nil {
			panic(err)
		}
	}

	return &Engine{
		registry:  o.registry,
		parser:    NewParser(o.registry),
		sanitizer: sanitizer,
		allowlist: allowlist,
		renderer:  NewRenderer(allowlist, o.render, o.log),
	}
}

// Tokens parses src into a token stream.
func (e *Engine) Tokens(src string) []*Token {
	return e.parser.Parse(src)
}

// HTML parses and renders src.
func (e *Engine) HTML(src string) (string, error) {
	return e.renderer.Render(e.parser.Parse(src))
}

// Markdown renders src to HTML and converts the result to markdown.
func (e *Engine) Markdown(src string) (string, error) {
	out, err := e.HTML(src)
	if err != nil {
		return "", err
	}
	return ToMarkdown(out)
}

// Registry returns the engine's rule registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Sanitizer returns the engine's style sanitizer.
func (e *Engine) Sanitizer() *Sanitizer {
	return e.sanitizer
}

// Allowlist returns the engine's allowlist.
func (e *Engine) Allowlist() *Allowlist {
	return e.allowlist
}
