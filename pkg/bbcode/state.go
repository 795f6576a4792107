package bbcode

// State is the token stream a rule pushes onto. Block-level and inline passes
// each get their own State.
type State struct {
	Tokens []*Token
	Level  int
	block  bool
}

// Push appends a token of the given type and returns it for further setup.
// Nesting and level are derived from the type.
func (s *State) Push(typ TokenType, tag string) *Token {
	tok := &Token{Type: typ, Tag: tag, Block: s.block}

	switch typ {
	case TokenOpen:
		tok.Nesting = 1
		tok.Level = s.Level
		s.Level++
	case TokenClose:
		s.Level--
		tok.Nesting = -1
		tok.Level = s.Level
	default:
		tok.Level = s.Level
	}

	s.Tokens = append(s.Tokens, tok)
	return tok
}

type stateMark struct {
	n     int
	level int
}

func (s *State) mark() stateMark {
	return stateMark{n: len(s.Tokens), level: s.Level}
}

// reset drops every token pushed after m.
func (s *State) reset(m stateMark) {
	s.Tokens = s.Tokens[:m.n]
	s.Level = m.level
}
