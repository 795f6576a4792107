package bbcode

// Expand pushes the tokens for one matched tag. content is the raw text
// between the opening and closing tags. It returns false when the rule
// declines, in which case the caller keeps the tag as literal text.
func (p *Parser) Expand(st *State, rule Rule, info TagInfo, content string, line int) bool {
	switch e := rule.Expansion.(type) {
	case Wrap:
		open := st.Push(TokenOpen, e.Element)
		open.Map = info.lines()
		if e.Attr != "" {
			open.SetAttr(e.Attr, e.value(info))
		}
		p.parseContent(st, rule.Kind, content, line)
		st.Push(TokenClose, e.Element)
		return true

	case Replace:
		if rule.Kind == KindBlock {
			content, _ = trimBlockContent(content, line)
		}
		return e.Fn(st, info, content)

	case Hooks:
		if e.Before != nil {
			e.Before(st, info)
		}
		p.parseContent(st, rule.Kind, content, line)
		if e.After != nil {
			e.After(st, info)
		}
		return true

	default:
		return false
	}
}
