package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "Off Topic", c.Translate("bbcode.ot"))
	assert.Equal(t, "Edit", c.Translate("bbcode.edit"))
	assert.Same(t, c, Default())
}

func TestTranslate_MissingKeyFallsBack(t *testing.T) {
	assert.Equal(t, "bbcode.nope", Default().Translate("bbcode.nope"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want map[string]string
	}{
		{
			name: "nested",
			data: "bbcode:\n  ot: Hors sujet\n  edit: Modifier\n",
			want: map[string]string{"bbcode.ot": "Hors sujet", "bbcode.edit": "Modifier"},
		},
		{
			name: "flat dotted keys",
			data: "bbcode.ot: Fuera de tema\n",
			want: map[string]string{"bbcode.ot": "Fuera de tema"},
		},
		{
			name: "non string values",
			data: "a:\n  n: 3\n  b: true\n  empty:\n",
			want: map[string]string{"a.n": "3", "a.b": "true", "a.empty": ""},
		},
		{
			name: "empty document",
			data: "",
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.messages)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("bbcode: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalog")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fr.yml")
	require.NoError(t, os.WriteFile(path, []byte("bbcode:\n  ot: Hors sujet\n"), 0600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Hors sujet", c.Translate("bbcode.ot"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestWith(t *testing.T) {
	c := Default().With(map[string]string{"bbcode.ot": "Aside"})
	assert.Equal(t, "Aside", c.Translate("bbcode.ot"))
	assert.Equal(t, "Edit", c.Translate("bbcode.edit"))

	// the source catalog is untouched
	assert.Equal(t, "Off Topic", Default().Translate("bbcode.ot"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []string{"bbcode.edit", "bbcode.ot"}, Default().Keys())
}

func TestMerge(t *testing.T) {
	fr, err := Parse([]byte("bbcode:\n  ot: Hors sujet\n"))
	require.NoError(t, err)

	c := Default().Merge(fr)
	assert.Equal(t, "Hors sujet", c.Translate("bbcode.ot"))
	assert.Equal(t, "Edit", c.Translate("bbcode.edit"))
	assert.Equal(t, "Off Topic", Default().Translate("bbcode.ot"))
}
