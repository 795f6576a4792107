package bbcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidateStyle(t *testing.T) {
	tests := []struct {
		name    string
		element string
		value   string
		ok      bool
	}{
		// span: exactly one declaration from a fixed set
		{"span percent size", "span", "font-size:150%", true},
		{"span one digit size", "span", "font-size:5%", true},
		{"span four digit size", "span", "font-size:1500%", false},
		{"span keyword size", "span", "font-size:x-small", true},
		{"span bad keyword", "span", "font-size:huge", false},
		{"span hex color", "span", "color:#ff0000", true},
		{"span named color", "span", "color:red", true},
		{"span background", "span", "background-color:#abc", true},
		{"span quoted font", "span", "font-family:'Times New Roman'", true},
		{"span unquoted font", "span", "font-family:Arial", false},
		{"span two declarations", "span", "color:red;font-size:10%", false},
		{"span expression", "span", "color:expression(alert(1))", false},
		{"span empty", "span", "", false},

		// div: text alignment only
		{"div center", "div", "text-align:center", true},
		{"div left", "div", "text-align:left", true},
		{"div right", "div", "text-align:right", true},
		{"div justify", "div", "text-align:justify", false},
		{"div extra declaration", "div", "text-align:center;color:red", false},

		// hr: every declaration checked against its property
		{"hr color and opacity", "hr", "color:#abc;opacity:0.5", true},
		{"hr unknown property", "hr", "color:#abc;unknownprop:1", false},
		{"hr empty", "hr", "", true},
		{"hr whitespace", "hr", "   ", true},
		{"hr only separator", "hr", ";", false},
		{"hr trailing separator", "hr", "color:#abc;", true},
		{"hr width and height", "hr", "width:50%;height:2px", true},
		{"hr auto width", "hr", "width:auto", true},
		{"hr margin shorthand", "hr", "margin:10px auto", true},
		{"hr negative margin", "hr", "margin-top:-1em", true},
		{"hr unitless margin", "hr", "margin:0", false},
		{"hr border none", "hr", "border:none", true},
		{"hr border shorthand", "hr", "border:1px solid red", false},
		{"hr border top", "hr", "border-top:1px solid #ccc", true},
		{"hr opacity one", "hr", "opacity:1", true},
		{"hr opacity too high", "hr", "opacity:1.5", false},
		{"hr rgb color", "hr", "color:rgb(1, 2, 3)", true},
		{"hr uppercase property", "hr", "COLOR:#ABC", true},
		{"hr spaced declaration", "hr", " color : red ", true},
		{"hr background url", "hr", "background:url(x)", false},
		{"hr missing colon", "hr", "color", false},
		{"hr extra colon", "hr", "a:b:c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStyle(tt.element, tt.value)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateStyle_Idempotent(t *testing.T) {
	inputs := []struct{ element, value string }{
		{"span", "font-size:150%"},
		{"span", "font-size:1500%"},
		{"div", "text-align:center"},
		{"hr", "color:#abc;opacity:0.5"},
		{"hr", "color:#abc;unknownprop:1"},
	}
	for _, in := range inputs {
		first := ValidateStyle(in.element, in.value) == nil
		second := ValidateStyle(in.element, in.value) == nil
		assert.Equal(t, first, second, "%s %q", in.element, in.value)
	}
}

func TestValidateStyle_UnknownElement(t *testing.T) {
	err := ValidateStyle("p", "color:red")
	assert.True(t, errors.Is(err, ErrNoStyleRule))
}

func TestValidateStyle_CollectsEveryFailure(t *testing.T) {
	err := ValidateStyle("hr", "foo:1;color:#abc;bar:2;width:wide")
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)

	var styleErr *StyleError
	require.True(t, errors.As(errs[0], &styleErr))
	assert.Equal(t, "hr", styleErr.Element)
	assert.Equal(t, "foo:1", styleErr.Declaration)
	assert.Equal(t, "property not allowed", styleErr.Reason)

	require.True(t, errors.As(errs[2], &styleErr))
	assert.Equal(t, "width:wide", styleErr.Declaration)
	assert.Equal(t, "invalid value", styleErr.Reason)
}

func TestStyleError_Error(t *testing.T) {
	assert.Equal(t, `hr style "foo:1": property not allowed`,
		(&StyleError{Element: "hr", Declaration: "foo:1", Reason: "property not allowed"}).Error())
	assert.Equal(t, "div style: bad",
		(&StyleError{Element: "div", Reason: "bad"}).Error())
}

func TestHRProperties(t *testing.T) {
	assert.Equal(t, []string{
		"background-color",
		"border",
		"border-top",
		"color",
		"height",
		"margin",
		"margin-bottom",
		"margin-top",
		"opacity",
		"width",
	}, HRProperties())
}
