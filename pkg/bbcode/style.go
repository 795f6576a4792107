// style.go validates style attribute values against per-element allowlists.
package bbcode

import (
	"errors"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// ErrNoStyleRule is returned by ValidateStyle for elements it has no rule for.
var ErrNoStyleRule = errors.New("no style rule for element")

// StyleError describes one rejected style value or declaration.
type StyleError struct {
	Element     string
	Declaration string
	Reason      string
}

func (e *StyleError) Error() string {
	if e.Declaration == "" {
		return fmt.Sprintf("%s style: %s", e.Element, e.Reason)
	}
	return fmt.Sprintf("%s style %q: %s", e.Element, e.Declaration, e.Reason)
}

var (
	// spanStyle accepts exactly one declaration from a fixed set.
	spanStyle = regexp.MustCompile(`^(font-size:(xx-small|x-small|small|medium|large|x-large|xx-large|[0-9]{1,3}%)|background-color:#?[a-zA-Z0-9]+|color:#?[a-zA-Z0-9]+|font-family:'[a-zA-Z0-9\s-]+')$`)

	divStyle = regexp.MustCompile(`^text-align:(center|left|right)$`)
)

const (
	colorValue  = `(#[a-fA-F0-9]{3,8}|rgba?\([\d\s,.]+\)|[a-zA-Z]+)`
	lengthValue = `(\d+(\.\d+)?(px|%|em|rem)|auto)`
	marginValue = `(-?\d+(\.\d+)?(px|%|em|rem)|auto)`
)

// hrProperties is the complete set of properties an hr style may use, each
// with the only value shape it accepts. Extending it means auditing the new
// value shape; it is not a CSS grammar.
var hrProperties = map[string]*regexp.Regexp{
	"color":            regexp.MustCompile(`(?i)^` + colorValue + `$`),
	"background-color": regexp.MustCompile(`(?i)^` + colorValue + `$`),
	"height":           regexp.MustCompile(`^` + lengthValue + `$`),
	"width":            regexp.MustCompile(`^` + lengthValue + `$`),
	"margin":           regexp.MustCompile(`^(` + marginValue + `\s*){1,4}$`),
	"margin-top":       regexp.MustCompile(`^` + marginValue + `$`),
	"margin-bottom":    regexp.MustCompile(`^` + marginValue + `$`),
	"border":           regexp.MustCompile(`^none$`),
	"border-top":       regexp.MustCompile(`(?i)^\d+(\.\d+)?(px|em|rem)\s+(none|solid|dashed|dotted)\s+` + colorValue + `$`),
	"opacity":          regexp.MustCompile(`^(0(\.\d+)?|1(\.0+)?)$`),
}

// HRProperties returns the property names an hr style may use.
func HRProperties() []string {
	return slices.Sorted(maps.Keys(hrProperties))
}

// ValidateStyle checks a style attribute value for span, div or hr. It
// returns nil when the value is acceptable, ErrNoStyleRule for any other
// element, and otherwise an error naming what was rejected.
func ValidateStyle(element, value string) error {
	switch element {
	case "span":
		if !spanStyle.MatchString(value) {
			return &StyleError{Element: element, Reason: "not one of the allowed declarations"}
		}
		return nil
	case "div":
		if !divStyle.MatchString(value) {
			return &StyleError{Element: element, Reason: "only text-align:center|left|right is allowed"}
		}
		return nil
	case "hr":
		return validateDeclarations(element, value, hrProperties)
	default:
		return ErrNoStyleRule
	}
}

// validateDeclarations checks every declaration in a semicolon separated
// list. All must pass; the returned error combines every failure.
func validateDeclarations(element, value string, props map[string]*regexp.Regexp) error {
	var decls []string
	for _, d := range strings.Split(value, ";") {
		if d = strings.TrimSpace(d); d != "" {
			decls = append(decls, d)
		}
	}

	if len(decls) == 0 {
		if strings.TrimSpace(value) == "" {
			return nil
		}
		return &StyleError{Element: element, Reason: "no declarations"}
	}

	var errs error
	for _, decl := range decls {
		parts := strings.Split(decl, ":")
		if len(parts) != 2 {
			errs = multierr.Append(errs, &StyleError{Element: element, Declaration: decl, Reason: "expected property:value"})
			continue
		}

		prop := strings.ToLower(strings.TrimSpace(parts[0]))
		val := strings.TrimSpace(parts[1])

		pattern, ok := props[prop]
		if !ok {
			errs = multierr.Append(errs, &StyleError{Element: element, Declaration: decl, Reason: "property not allowed"})
			continue
		}
		if !pattern.MatchString(val) {
			errs = multierr.Append(errs, &StyleError{Element: element, Declaration: decl, Reason: "invalid value"})
		}
	}
	return errs
}
