package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clitestutil "github.com/leapstack-labs/writegood/internal/cli/testutil"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

func TestRules_Markdown(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "")
	require.NoError(t, err)

	clitestutil.AssertNoANSI(t, out)
	clitestutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Rules")
	assert.Contains(t, out, "## Clarity")
	assert.Contains(t, out, "## Voice")
	assert.Contains(t, out, "- **weasel** - ")
	assert.Contains(t, out, "- **eprime** - Flags forms of \"to be\" (E-Prime). (`off`)")
}

func TestRules_Text(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "--format", "text", "-V")
	require.NoError(t, err)

	clitestutil.AssertNoANSI(t, out)
	assert.Contains(t, out, "Rules (8 of 9 enabled)")
	assert.Contains(t, out, "tooWordy")
	assert.Contains(t, out, "Clarity")
	assert.Contains(t, out, "Remarkably few developers write well.")
}

func TestRules_JSON(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "--format", "json")
	require.NoError(t, err)

	var got RulesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, lint.Count(), got.Count.Total)
	assert.Equal(t, lint.Count()-1, got.Count.Enabled)
	require.NotEmpty(t, got.Rules)
	assert.Equal(t, "weasel", got.Rules[0].Name)
	assert.True(t, got.Rules[0].Enabled)
}

func TestRules_Group(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "--format", "json", "--group", "voice")
	require.NoError(t, err)

	var got RulesOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	names := make([]string, 0, len(got.Rules))
	for _, r := range got.Rules {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"passive", "eprime"}, names)

	_, _, err = runCommand(t, NewRulesCommand(), "", "--group", "nope")
	require.Error(t, err)
}

func TestRules_Show(t *testing.T) {
	out, _, err := runCommand(t, NewRulesCommand(), "", "Passive")
	require.NoError(t, err)
	assert.Contains(t, out, "# passive")
	assert.Contains(t, out, "**Group:** Voice | **Enabled:** `on`")
	assert.Contains(t, out, "## Bad Example\n\n> The script was killed.")

	out, _, err = runCommand(t, NewRulesCommand(), "", "--format", "text", "so")
	require.NoError(t, err)
	assert.Contains(t, out, `Message: "<span> adds no meaning"`)
	assert.Contains(t, out, "Why This Matters")

	out, _, err = runCommand(t, NewRulesCommand(), "", "--format", "json", "eprime")
	require.NoError(t, err)
	var entry RuleEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entry))
	assert.Equal(t, "eprime", entry.Name)
	assert.False(t, entry.Enabled)

	_, _, err = runCommand(t, NewRulesCommand(), "", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `rule "bogus" not found`)
}

func TestGroupTitle(t *testing.T) {
	assert.Equal(t, "Clarity", groupTitle("clarity"))
	assert.Equal(t, "Typo", groupTitle("typo"))
}
