package bbcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizer_Check(t *testing.T) {
	s := NewSanitizer(nil)

	tests := []struct {
		name    string
		element string
		attr    string
		value   string
		want    Verdict
	}{
		{"span style ok", "span", "style", "color:red", Allow},
		{"span style bad", "span", "style", "font-size:1500%", Reject},
		{"div style ok", "div", "style", "text-align:center", Allow},
		{"div style bad", "div", "style", "color:red", Reject},
		{"hr style ok", "hr", "style", "color:#abc;opacity:0.5", Allow},
		{"hr style bad", "hr", "style", "color:#abc;unknownprop:1", Reject},
		{"hr empty style", "hr", "style", "", Allow},
		{"other element", "p", "style", "color:red", Abstain},
		{"other attribute", "span", "class", "highlight", Abstain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Check(tt.element, tt.attr, tt.value))
			assert.Equal(t, tt.want == Allow, s.IsAllowed(tt.element, tt.attr, tt.value))
		})
	}
}

func TestSanitizer_LogsRejections(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewSanitizer(zap.New(core))

	s.Check("hr", "style", "unknownprop:1")
	s.Check("span", "style", "color:red")
	s.Check("p", "style", "whatever")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Dropping style attribute", entries[0].Message)
	assert.Equal(t, "bbcode-sanitizer", entries[0].LoggerName)

	fields := entries[0].ContextMap()
	assert.Equal(t, "hr", fields["element"])
	assert.Equal(t, "unknownprop:1", fields["value"])
	assert.Contains(t, fields["error"], "property not allowed")
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "abstain", Abstain.String())
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "reject", Reject.String())
}
