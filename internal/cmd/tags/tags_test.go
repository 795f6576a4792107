package tags

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

func TestRunTags_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTags(&tagsOptions{noColor: true, stdout: &buf}, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 19) // header + 18 tags
	assert.Contains(t, lines[0], "TAG")
	assert.Contains(t, lines[0], "EXPANSION")
	assert.Contains(t, buf.String(), "span[style]")
	assert.Contains(t, buf.String(), "blockquote[class]")
}

func TestRunTags_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTags(&tagsOptions{output: "json", noColor: true, stdout: &buf}, nil))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 18)

	byTag := make(map[string]map[string]string)
	for _, row := range rows {
		byTag[row["tag"]+"/"+row["kind"]] = row
	}

	assert.Equal(t, "wrap", byTag["size/inline"]["expansion"])
	assert.Equal(t, "span[style]", byTag["size/inline"]["output"])
	assert.Equal(t, "a[name]", byTag["aname/inline"]["output"])
	assert.Equal(t, "replace", byTag["hr/block"]["expansion"])
	assert.Equal(t, "void", byTag["hr/block"]["output"])
	assert.Equal(t, "hooks", byTag["ot/block"]["expansion"])
	assert.Equal(t, "replace", byTag["list/block"]["expansion"])
}

func TestRunTags_Allowlist(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runTags(&tagsOptions{allowlist: true, output: "plain", noColor: true, stdout: &buf}, nil))

	out := buf.String()
	for _, entry := range bbcode.Entries {
		assert.Contains(t, out, entry+"\n")
	}
	assert.Contains(t, out, "a[href]\n")
}

func TestRunTags_CustomEngine(t *testing.T) {
	r := bbcode.NewRegistry()
	r.MustRegister(bbcode.Rule{Tag: "shout", Kind: bbcode.KindInline, Expansion: bbcode.Wrap{Element: "strong"}})

	var buf bytes.Buffer
	require.NoError(t, runTags(&tagsOptions{output: "plain", noColor: true, stdout: &buf}, bbcode.NewEngine(bbcode.WithRegistry(r))))
	assert.Equal(t, "shout\tinline\twrap\tstrong\n", buf.String())
}

func TestRunTags_InvalidOutput(t *testing.T) {
	err := runTags(&tagsOptions{output: "yaml"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}
