package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode(t *testing.T) {
	tests := map[string]OutputMode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"TEXT":     ModeText,
		"markdown": ModeMarkdown,
		"md":       ModeMarkdown,
		" json ":   ModeJSON,
		"yml":      ModeYAML,
		"bogus":    ModeAuto,
	}
	for in, want := range tests {
		assert.Equal(t, want, Mode(in), "Mode(%q)", in)
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("YML")
	require.NoError(t, err)
	assert.Equal(t, ModeYAML, mode)

	mode, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAuto, mode)

	_, err = ParseMode("jsno")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid output format "jsno"`)
}

func TestEffectiveMode(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, ModeText, NewRendererWithTTY(&out, &errOut, true, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeMarkdown, NewRendererWithTTY(&out, &errOut, false, ModeAuto).EffectiveMode())
	assert.Equal(t, ModeJSON, NewRendererWithTTY(&out, &errOut, true, ModeJSON).EffectiveMode())
	assert.Equal(t, ModeAuto, NewRendererWithTTY(&out, &errOut, false, "").Mode())
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out, &out, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestStyles_PlainWithoutTTY(t *testing.T) {
	var out bytes.Buffer
	r := NewRendererWithTTY(&out, &out, false, ModeText)
	assert.Equal(t, "file.txt", r.Styles().FilePath.Render("file.txt"))
	assert.Equal(t, "^^^", r.Styles().Caret.Render("^^^"))
	assert.Equal(t, "\t  ^^^", r.Styles().Caret.Render("\t  ^^^"))
}

func TestSuccess(t *testing.T) {
	var out bytes.Buffer

	NewRendererWithTTY(&out, &out, false, ModeMarkdown).Success("done")
	assert.Equal(t, "done\n", out.String())

	out.Reset()
	NewRendererWithTTY(&out, &out, false, ModeJSON).Success("done")
	assert.Empty(t, out.String())
}

func TestWarningAndError(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewRendererWithTTY(&out, &errOut, false, ModeMarkdown)

	r.Warning("careful")
	r.Error("broken")
	assert.Empty(t, out.String())
	assert.Equal(t, "warning: careful\nerror: broken\n", errOut.String())
}

func TestStructured(t *testing.T) {
	payload := map[string]any{"count": 2}

	var out bytes.Buffer
	ok, err := NewRendererWithTTY(&out, &out, false, ModeJSON).Structured(payload)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"count": 2}`, out.String())

	out.Reset()
	ok, err = NewRendererWithTTY(&out, &out, false, ModeYAML).Structured(payload)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.YAMLEq(t, "count: 2\n", out.String())

	out.Reset()
	ok, err = NewRendererWithTTY(&out, &out, false, ModeMarkdown).Structured(payload)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out.String())
}
