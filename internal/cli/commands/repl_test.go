package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	clitestutil "github.com/leapstack-labs/writegood/internal/cli/testutil"
	"github.com/leapstack-labs/writegood/pkg/lint"
)

func newTestSession() (*replSession, *clitestutil.TestRenderer) {
	r := clitestutil.NewTestRendererText()
	return newREPLSession(r.Renderer, lint.NewConfig()), r
}

func TestREPL_ChecksLines(t *testing.T) {
	s, r := newTestSession()

	assert.False(t, s.Handle("The cat was stolen."))
	assert.Contains(t, r.Output(), "The cat was stolen.\n        ^^^^^^^^^^\n\"was stolen\" may be passive voice on line 1 at column 8\n")

	assert.False(t, s.Handle("The operator killed the script."))
	assert.Contains(t, r.Output(), "Looks good")

	assert.False(t, s.Handle("   "))
}

func TestREPL_ToggleRules(t *testing.T) {
	s, r := newTestSession()

	s.Handle(".disable passive")
	assert.Contains(t, r.Output(), "passive off")
	s.Handle("The cat was stolen.")
	assert.NotContains(t, r.Output(), "passive voice")

	s.Handle(".enable EPRIME passive")
	assert.Contains(t, r.Output(), "eprime on")
	s.Handle("The cat was stolen.")
	assert.Contains(t, r.Output(), `"was" is a form of 'to be'`)

	s.Handle(".enable")
	assert.Contains(t, r.ErrorOutput(), "usage: .enable <rule>...")

	s.Handle(".disable nope")
	assert.Contains(t, r.ErrorOutput(), `unknown rule "nope"`)
}

func TestREPL_Rules(t *testing.T) {
	s, r := newTestSession()

	s.Handle(".rules")
	assert.Contains(t, r.Output(), "  weasel     on\n")
	assert.Contains(t, r.Output(), "  eprime     off\n")
}

func TestREPL_Whitelist(t *testing.T) {
	s, r := newTestSession()

	s.Handle(".whitelist was stolen")
	assert.Contains(t, r.Output(), `whitelisted "was stolen"`)

	s.Handle("The cat was stolen.")
	assert.Contains(t, r.Output(), "Looks good")

	s.Handle(".whitelist")
	assert.Contains(t, r.Output(), "whitelist: was stolen")
}

func TestREPL_Commands(t *testing.T) {
	s, r := newTestSession()

	assert.False(t, s.Handle(".help"))
	assert.Contains(t, r.Output(), ".enable <rule>...")

	assert.False(t, s.Handle(".frobnicate"))
	assert.Contains(t, r.ErrorOutput(), "unknown command .frobnicate")

	assert.True(t, s.Handle(".quit"))
	assert.True(t, s.Handle(".EXIT"))
}

func TestREPLCompleter(t *testing.T) {
	c := newREPLCompleter()
	assert.Len(t, c.GetChildren(), 7)
}
