package init

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/pkg/i18n"
)

func TestAnswers_Config(t *testing.T) {
	tests := []struct {
		name       string
		answers    answers
		wantLabels map[string]string
	}{
		{
			name: "default labels are not stored",
			answers: answers{
				format:    "html",
				logLevel:  "warn",
				otLabel:   "Off Topic",
				editLabel: "Edit",
			},
			wantLabels: nil,
		},
		{
			name: "changed label stored",
			answers: answers{
				format:    "markdown",
				logLevel:  "debug",
				otLabel:   " Aside ",
				editLabel: "Edit",
			},
			wantLabels: map[string]string{"ot": "Aside"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.answers.config(i18n.Default())
			assert.Equal(t, tt.answers.format, cfg.Format)
			assert.Equal(t, tt.answers.logLevel, cfg.LogLevel)
			assert.Equal(t, tt.wantLabels, cfg.Labels)
			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestAnswers_ConfigTrimsLocale(t *testing.T) {
	a := &answers{format: "html", logLevel: "none", localeFile: "  /etc/fr.yml ", otLabel: "Off Topic", editLabel: "Edit"}
	cfg := a.config(i18n.Default())
	assert.Equal(t, "/etc/fr.yml", cfg.LocaleFile)
}

func TestValidateLocaleFile(t *testing.T) {
	assert.NoError(t, validateLocaleFile(""))
	assert.NoError(t, validateLocaleFile("   "))

	good := filepath.Join(t.TempDir(), "fr.yml")
	require.NoError(t, os.WriteFile(good, []byte("bbcode:\n  ot: Hors sujet\n"), 0600))
	assert.NoError(t, validateLocaleFile(good))

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("bbcode: [x"), 0600))
	assert.Error(t, validateLocaleFile(bad))

	assert.Error(t, validateLocaleFile(filepath.Join(t.TempDir(), "missing.yml")))
}

func TestRequireLabel(t *testing.T) {
	assert.NoError(t, requireLabel("Off Topic"))
	assert.Error(t, requireLabel(""))
	assert.Error(t, requireLabel("  "))
}

func TestNewCmdInit(t *testing.T) {
	cmd := NewCmdInit()
	assert.Equal(t, "init", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("format"))
}
