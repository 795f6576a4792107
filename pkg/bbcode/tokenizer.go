// tokenizer.go implements tokenization for [tag]...[/tag] bracket syntax.
package bbcode

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenizeBrackets scans input for BBCode tag syntax and returns a token stream.
// Recognized forms:
//   - [tag], [tag=value], [tag="quoted value"] - open tag with optional default
//   - [tag key=value key2="v"] - open tag with named parameters
//   - [/tag] - close tag
//   - [tag/] - self-closing (no body)
//
// Text between tags is returned as BracketTokenText tokens. Brackets that do not
// form a tag, such as [*], stay in the text. Unknown tag names are still
// tokenized; whether a tag means anything is decided by the registry.
func TokenizeBrackets(input string) []BracketToken {
	var tokens []BracketToken
	pos := 0
	textStart := 0

	for pos < len(input) {
		if input[pos] != '[' {
			pos++
			continue
		}

		token, endPos, err := parseBracketTag(input, pos)
		if err != nil {
			// Not a valid tag - treat '[' as text
			pos++
			continue
		}

		if pos > textStart {
			tokens = append(tokens, BracketToken{
				Type:     BracketTokenText,
				Text:     input[textStart:pos],
				Position: textStart,
				End:      pos,
			})
		}

		tokens = append(tokens, token)
		pos = endPos
		textStart = pos
	}

	if textStart < len(input) {
		tokens = append(tokens, BracketToken{
			Type:     BracketTokenText,
			Text:     input[textStart:],
			Position: textStart,
			End:      len(input),
		})
	}

	return tokens
}

// parseBracketTag attempts to parse a tag starting at pos.
// Returns the token, the position after the tag, and any error.
func parseBracketTag(input string, pos int) (BracketToken, int, error) {
	if pos >= len(input) || input[pos] != '[' {
		return BracketToken{}, pos, fmt.Errorf("expected '['")
	}

	startPos := pos
	pos++

	isCloseTag := false
	if pos < len(input) && input[pos] == '/' {
		isCloseTag = true
		pos++
	}

	nameStart := pos
	for pos < len(input) && isValidTagNameChar(input[pos]) {
		pos++
	}
	if pos == nameStart {
		return BracketToken{}, startPos, fmt.Errorf("empty tag name")
	}
	name := strings.ToLower(input[nameStart:pos])

	if isCloseTag {
		if pos >= len(input) || input[pos] != ']' {
			return BracketToken{}, startPos, fmt.Errorf("unclosed close tag")
		}
		pos++
		return BracketToken{
			Type:            BracketTokenCloseTag,
			Name:            name,
			OriginalTagText: input[startPos:pos],
			Position:        startPos,
			End:             pos,
		}, pos, nil
	}

	token := BracketToken{
		Type:       BracketTokenOpenTag,
		Name:       name,
		Parameters: make(map[string]string),
		Position:   startPos,
	}

	if pos < len(input) && input[pos] == '=' {
		pos++
		value, newPos, err := parseDefaultValue(input, pos)
		if err != nil {
			return BracketToken{}, startPos, err
		}
		token.Default = value
		token.HasDefault = true
		pos = newPos
	} else if pos < len(input) && input[pos] != ']' && input[pos] != '/' && !isSpace(input[pos]) {
		// [b2x] style garbage after the name
		return BracketToken{}, startPos, fmt.Errorf("invalid character after tag name")
	}

	endPos, selfClose, err := parseParametersUntilClose(input, pos, token.Parameters)
	if err != nil {
		return BracketToken{}, startPos, err
	}
	if selfClose {
		token.Type = BracketTokenSelfClose
	}
	token.OriginalTagText = input[startPos:endPos]
	token.End = endPos

	return token, endPos, nil
}

// parseDefaultValue parses the value after [tag=. Quoted values are unquoted.
// An unquoted value runs to ']' but stops before a whitespace-separated key=
// so [font=Times New Roman] and [quote=name post=3] both work.
func parseDefaultValue(input string, pos int) (string, int, error) {
	if pos < len(input) && (input[pos] == '"' || input[pos] == '\'') {
		return parseQuoted(input, pos)
	}

	valueStart := pos
	for pos < len(input) {
		c := input[pos]
		if c == ']' || c == '\n' {
			break
		}
		if isSpace(c) && startsParameter(input, pos) {
			break
		}
		pos++
	}
	if pos >= len(input) || input[pos] == '\n' {
		return "", pos, fmt.Errorf("unclosed bracket tag")
	}
	return input[valueStart:pos], pos, nil
}

// startsParameter reports whether input at pos is whitespace followed by key=.
func startsParameter(input string, pos int) bool {
	for pos < len(input) && isSpace(input[pos]) {
		pos++
	}
	keyStart := pos
	for pos < len(input) && isValidParamKeyChar(input[pos]) {
		pos++
	}
	return pos > keyStart && pos < len(input) && input[pos] == '='
}

// parseParametersUntilClose parses key=value parameters into params until ']'.
// Returns the position after ']' and whether the tag was self-closing.
func parseParametersUntilClose(input string, pos int, params map[string]string) (int, bool, error) {
	for pos < len(input) {
		for pos < len(input) && isSpace(input[pos]) {
			pos++
		}
		if pos >= len(input) {
			break
		}

		switch input[pos] {
		case ']':
			return pos + 1, false, nil
		case '/':
			if pos+1 < len(input) && input[pos+1] == ']' {
				return pos + 2, true, nil
			}
			return pos, false, fmt.Errorf("expected ']' after '/'")
		}

		keyStart := pos
		for pos < len(input) && isValidParamKeyChar(input[pos]) {
			pos++
		}
		if pos == keyStart {
			return pos, false, fmt.Errorf("expected parameter key or ']'")
		}
		key := strings.ToLower(input[keyStart:pos])

		if pos >= len(input) || input[pos] != '=' {
			// Key without value - treat as boolean true
			params[key] = "true"
			continue
		}
		pos++

		value, newPos, err := parseParamValue(input, pos)
		if err != nil {
			return pos, false, err
		}
		params[key] = value
		pos = newPos
	}

	return pos, false, fmt.Errorf("unclosed bracket tag")
}

// parseParamValue parses a named parameter value, handling quoted strings.
func parseParamValue(input string, pos int) (string, int, error) {
	if pos >= len(input) {
		return "", pos, fmt.Errorf("unexpected end of input")
	}

	if input[pos] == '"' || input[pos] == '\'' {
		return parseQuoted(input, pos)
	}

	// Unquoted value - read until space or ']'
	valueStart := pos
	for pos < len(input) && !isSpace(input[pos]) && input[pos] != ']' {
		pos++
	}
	return input[valueStart:pos], pos, nil
}

// parseQuoted reads a quoted string starting at the opening quote.
// Escaped quotes (\' or \") are unescaped in the returned value.
func parseQuoted(input string, pos int) (string, int, error) {
	quoteChar := input[pos]
	pos++
	valueStart := pos
	var value strings.Builder

	for pos < len(input) {
		if input[pos] == quoteChar {
			value.WriteString(input[valueStart:pos])
			return value.String(), pos + 1, nil
		}
		if input[pos] == '\\' && pos+1 < len(input) && input[pos+1] == quoteChar {
			value.WriteString(input[valueStart:pos])
			value.WriteByte(quoteChar)
			pos += 2
			valueStart = pos
			continue
		}
		pos++
	}
	return "", pos, fmt.Errorf("unclosed quoted value")
}

func isValidTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func isValidParamKeyChar(c byte) bool {
	return isValidTagNameChar(c) || c == '-' || c == '_'
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}
