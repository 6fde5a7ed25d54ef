package lint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/writegood/internal/testutil"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

// literalRule flags every occurrence of word.
func literalRule(name, word, explanation string, enabled bool) lint.RuleDef {
	return lint.RuleDef{
		Name:             name,
		Group:            "testing",
		Explanation:      explanation,
		EnabledByDefault: enabled,
		Check: func(text string) []lint.Match {
			var matches []lint.Match
			for i := 0; ; {
				j := strings.Index(text[i:], word)
				if j < 0 {
					return matches
				}
				matches = append(matches, lint.Match{Index: i + j, Offset: len(word)})
				i += j + len(word)
			}
		},
	}
}

func withRules(t *testing.T, rules ...lint.RuleDef) {
	t.Helper()
	lint.Clear()
	for _, r := range rules {
		lint.Register(r)
	}
	t.Cleanup(lint.Clear)
}

func TestAnalyzer_EmptyText(t *testing.T) {
	withRules(t, literalRule("a", "x", "is x", true))

	got := lint.NewAnalyzer(nil).Analyze("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAnalyzer_NoMatches(t *testing.T) {
	withRules(t, literalRule("a", "x", "is x", true))

	got := lint.NewAnalyzer(nil).Analyze("nothing here")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAnalyzer_MergesIdenticalSpans(t *testing.T) {
	withRules(t,
		literalRule("first", "word", "is first", true),
		literalRule("second", "word", "is second", true),
		literalRule("third", "word", "is third", true),
	)

	got := lint.NewAnalyzer(nil).Analyze("a word here")
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 4, got[0].Offset)
	assert.Equal(t, `"word" is first, is second and is third`, got[0].Reason)
	assert.Equal(t, []string{"first", "second", "third"}, got[0].Rules)
}

func TestAnalyzer_KeepsPartialOverlaps(t *testing.T) {
	withRules(t,
		literalRule("long", "big dog", "is long", true),
		literalRule("short", "dog", "is short", true),
	)

	got := lint.NewAnalyzer(nil).Analyze("a big dog")
	require.Len(t, got, 2)
	assert.Equal(t, `"big dog" is long`, got[0].Reason)
	assert.Equal(t, `"dog" is short`, got[1].Reason)
}

func TestAnalyzer_TieBreaksByRegistrationOrder(t *testing.T) {
	withRules(t,
		literalRule("registered-first", "ab", "is ab", true),
		literalRule("registered-second", "abc", "is abc", true),
	)

	got := lint.NewAnalyzer(nil).Analyze("abc")
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Offset, "first registered rule sorts first")
	assert.Equal(t, 3, got[1].Offset)
}

func TestAnalyzer_SortsByIndex(t *testing.T) {
	withRules(t,
		literalRule("z", "zz", "is zz", true),
		literalRule("a", "aa", "is aa", true),
	)

	got := lint.NewAnalyzer(nil).Analyze("aa zz aa")
	require.Len(t, got, 3)
	assert.Equal(t, []int{0, 3, 6}, []int{got[0].Index, got[1].Index, got[2].Index})
}

func TestAnalyzer_RespectsConfig(t *testing.T) {
	withRules(t,
		literalRule("on", "x", "is on", true),
		literalRule("off", "y", "is off", false),
	)

	text := "x y"

	got := lint.NewAnalyzer(lint.NewConfig()).Analyze(text)
	require.Len(t, got, 1)
	assert.Equal(t, `"x" is on`, got[0].Reason)

	got = lint.NewAnalyzer(lint.NewConfig().Disable("on").Enable("OFF")).Analyze(text)
	require.Len(t, got, 1)
	assert.Equal(t, `"y" is off`, got[0].Reason)
}

func TestAnalyzer_Whitelist(t *testing.T) {
	withRules(t, literalRule("word", "Word", "is flagged", true))

	got := lint.NewAnalyzer(lint.NewConfig().Allow("word")).Analyze("Word")
	assert.Empty(t, got)
}

func TestAnalyzer_DropsInvalidMatches(t *testing.T) {
	withRules(t, lint.RuleDef{
		Name:             "broken",
		EnabledByDefault: true,
		Check: func(text string) []lint.Match {
			return []lint.Match{
				{Index: -1, Offset: 2},
				{Index: 0, Offset: 0},
				{Index: 0, Offset: len(text) + 1},
				{Index: 0, Offset: 1, Explanation: "is fine"},
			}
		},
	})

	got := lint.NewAnalyzer(nil).WithLogger(testutil.NewTestLogger(t)).Analyze("ok")
	require.Len(t, got, 1)
	assert.Equal(t, `"o" is fine`, got[0].Reason)
}

func TestAnalyzer_UsesRuleExplanationByDefault(t *testing.T) {
	withRules(t, lint.RuleDef{
		Name:             "r",
		Explanation:      "from the rule",
		EnabledByDefault: true,
		Check: func(string) []lint.Match {
			return []lint.Match{{Index: 0, Offset: 1}}
		},
	})

	got := lint.NewAnalyzer(nil).Analyze("x")
	require.Len(t, got, 1)
	assert.Equal(t, `"x" from the rule`, got[0].Reason)
}

func TestJoinExplanations(t *testing.T) {
	assert.Equal(t, "", lint.JoinExplanations(nil))
	assert.Equal(t, "a", lint.JoinExplanations([]string{"a"}))
	assert.Equal(t, "a and b", lint.JoinExplanations([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", lint.JoinExplanations([]string{"a", "b", "c"}))
}
