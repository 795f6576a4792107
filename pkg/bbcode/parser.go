// parser.go turns BBCode documents into token streams using a Registry.
package bbcode

import (
	"regexp"
	"strings"
)

// blankLine separates paragraphs.
var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// Parser runs the block pass and then the inline pass over a document.
// It holds no per-document state and may be shared.
type Parser struct {
	registry *Registry
}

// NewParser creates a parser backed by r.
func NewParser(r *Registry) *Parser {
	return &Parser{registry: r}
}

// Parse converts a document to tokens. Top-level text becomes paragraphs,
// registered block tags are expanded, and every inline token gets its
// Children filled by the inline pass.
func (p *Parser) Parse(src string) []*Token {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	st := &State{block: true}
	p.parseBlocks(st, src, 0, false)

	for _, tok := range st.Tokens {
		if tok.Type == TokenInline {
			tok.Children = p.ParseInline(tok.Content)
		}
	}
	return st.Tokens
}

// ParseInline expands inline tags in a run of text. Newlines become br leaves.
func (p *Parser) ParseInline(src string) []*Token {
	st := &State{}
	p.parseInline(st, src, 0)
	return st.Tokens
}

// parseBlocks scans src for block tags. Text around them is pushed as
// paragraphs, or as bare inline tokens when tight is set.
func (p *Parser) parseBlocks(st *State, src string, line int, tight bool) {
	tokens := TokenizeBrackets(src)
	textStart := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != BracketTokenOpenTag && tok.Type != BracketTokenSelfClose {
			continue
		}
		rule, ok := p.registry.Lookup(tok.Name, KindBlock)
		if !ok {
			continue
		}
		last, ok := closingIndex(tokens, i, rule)
		if !ok {
			// unclosed - stays literal
			continue
		}

		m := st.mark()
		p.pushBlockText(st, src[textStart:tok.Position], line+lineOf(src, textStart), tight)

		end := tokens[last].End
		info := newTagInfo(tok, line+lineOf(src, tok.Position), line+lineOf(src, end))
		content, contentLine := "", info.StartLine
		if last > i {
			content = src[tok.End:tokens[last].Position]
			contentLine = line + lineOf(src, tok.End)
		}

		if !p.Expand(st, rule, info, content, contentLine) {
			st.reset(m)
			continue
		}

		textStart = end
		i = last
	}

	p.pushBlockText(st, src[textStart:], line+lineOf(src, textStart), tight)
}

// parseInline scans src for inline tags, pushing text, br and expanded tags.
func (p *Parser) parseInline(st *State, src string, line int) {
	tokens := TokenizeBrackets(src)
	textStart := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if tok.Type != BracketTokenOpenTag && tok.Type != BracketTokenSelfClose {
			continue
		}
		rule, ok := p.registry.Lookup(tok.Name, KindInline)
		if !ok {
			continue
		}
		last, ok := closingIndex(tokens, i, rule)
		if !ok {
			continue
		}

		m := st.mark()
		pushInlineText(st, src[textStart:tok.Position])

		end := tokens[last].End
		info := newTagInfo(tok, line+lineOf(src, tok.Position), line+lineOf(src, end))
		content := ""
		if last > i {
			content = src[tok.End:tokens[last].Position]
		}

		if !p.Expand(st, rule, info, content, info.StartLine) {
			st.reset(m)
			continue
		}

		textStart = end
		i = last
	}

	pushInlineText(st, src[textStart:])
}

// parseContent processes the inner content of a container tag.
func (p *Parser) parseContent(st *State, kind Kind, content string, line int) {
	if kind == KindInline {
		p.parseInline(st, content, line)
		return
	}
	content, line = trimBlockContent(content, line)
	p.parseBlocks(st, content, line, !blankLine.MatchString(content))
}

// pushBlockText pushes text found between block tags.
func (p *Parser) pushBlockText(st *State, text string, line int, tight bool) {
	if tight {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		inline := st.Push(TokenInline, "")
		inline.Content = text
		inline.Map = []int{line, line + strings.Count(text, "\n")}
		return
	}

	start := 0
	for _, sep := range append(blankLine.FindAllStringIndex(text, -1), []int{len(text), len(text)}) {
		para := text[start:sep[0]]
		paraLine := line + lineOf(text, start)
		start = sep[1]

		trimmed := strings.TrimSpace(para)
		if trimmed == "" {
			continue
		}
		paraLine += strings.Count(para[:strings.Index(para, trimmed)], "\n")
		lines := []int{paraLine, paraLine + strings.Count(trimmed, "\n")}

		st.Push(TokenOpen, "p").Map = lines
		inline := st.Push(TokenInline, "")
		inline.Content = trimmed
		inline.Map = lines
		st.Push(TokenClose, "p")
	}
}

// pushInlineText pushes text tokens, turning newlines into br leaves.
func pushInlineText(st *State, text string) {
	for i, piece := range strings.Split(text, "\n") {
		if i > 0 {
			st.Push(TokenLeaf, "br")
		}
		if piece != "" {
			st.Push(TokenText, "").Content = piece
		}
	}
}

// closingIndex finds the token that ends the tag at tokens[i]. Same-name tags
// nest, so [list][list][/list][/list] pairs outer with outer.
func closingIndex(tokens []BracketToken, i int, rule Rule) (int, bool) {
	tok := tokens[i]
	if tok.Type == BracketTokenSelfClose {
		return i, true
	}

	if r, ok := rule.Expansion.(Replace); ok && r.Void {
		if i+1 < len(tokens) && tokens[i+1].Type == BracketTokenCloseTag && tokens[i+1].Name == tok.Name {
			return i + 1, true
		}
		return i, true
	}

	depth := 1
	for j := i + 1; j < len(tokens); j++ {
		if tokens[j].Name != tok.Name {
			continue
		}
		switch tokens[j].Type {
		case BracketTokenOpenTag:
			depth++
		case BracketTokenCloseTag:
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return -1, false
}

// trimBlockContent drops one newline after the opening tag and one before the
// closing tag, so a tag alone on its line does not leave an empty first line.
func trimBlockContent(content string, line int) (string, int) {
	if strings.HasPrefix(content, "\n") {
		content = content[1:]
		line++
	}
	content = strings.TrimSuffix(content, "\n")
	return content, line
}

func newTagInfo(tok BracketToken, startLine, endLine int) TagInfo {
	return TagInfo{
		Tag:        tok.Name,
		Default:    tok.Default,
		HasDefault: tok.HasDefault,
		Params:     tok.Parameters,
		StartLine:  startLine,
		EndLine:    endLine,
	}
}

// lineOf returns the 0-based line of byte offset pos in s.
func lineOf(s string, pos int) int {
	return strings.Count(s[:pos], "\n")
}
