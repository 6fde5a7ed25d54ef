package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/leapstack-labs/writegood/pkg/annotate"
	"github.com/leapstack-labs/writegood/pkg/lint"
	"github.com/starfederation/datastar-go/datastar"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"

// sessionName is the cookie that remembers the last checked text.
const (
	sessionName = "writegood"
	textKey     = "text"
)

// CheckSignals are the playground signals posted by the browser.
type CheckSignals struct {
	Text string `json:"text"`
}

const playgroundHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>writegood</title>
<script type="module" src="%s"></script>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; }
textarea { width: 100%%; font: inherit; }
pre { background: #f5f5f5; padding: .5rem; margin-bottom: 0; }
.message { margin-top: .25rem; color: #555; }
.ok { color: #2a7; }
</style>
</head>
<body data-signals="%s">
<h1>writegood</h1>
<textarea rows="10" placeholder="Type or paste some prose" data-bind:text data-on:input__debounce.300ms="@post('/check')"></textarea>
`

const playgroundFoot = `</body>
</html>
`

// playgroundPage renders the full page with text already checked.
func playgroundPage(text string, suggestions []lint.Suggestion) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(CheckSignals{Text: text})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, playgroundHead, datastarScript, templ.EscapeString(string(signals))); err != nil {
			return err
		}
		if err := resultsView(text, suggestions).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, playgroundFoot)
		return err
	})
}

// resultsView renders the #results element for text.
func resultsView(text string, suggestions []lint.Suggestion) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="results">`); err != nil {
			return err
		}
		switch {
		case text == "":
		case len(suggestions) == 0:
			if _, err := io.WriteString(w, `<p class="ok">No issues found</p>`); err != nil {
				return err
			}
		default:
			for _, s := range suggestions {
				a := annotate.Resolve(text, s)
				if _, err := fmt.Fprintf(w, "<pre>%s\n%s</pre><p class=\"message\">%s</p>",
					templ.EscapeString(a.Line),
					templ.EscapeString(a.Underline),
					templ.EscapeString(a.Message()),
				); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

func (s *Server) playground(w http.ResponseWriter, r *http.Request) {
	// A stale or tampered cookie yields a fresh session.
	session, _ := s.sessions.Get(r, sessionName)
	text, _ := session.Values[textKey].(string)

	var suggestions []lint.Suggestion
	if text != "" {
		suggestions = s.analyze("playground", text, nil)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := playgroundPage(text, suggestions).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// checkSSE re-checks the playground text and patches the results.
func (s *Server) checkSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals CheckSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.ConsoleError(fmt.Errorf("failed to read signals: %w", err))
		return
	}

	// The cookie must be set before the event stream sends its headers.
	session, _ := s.sessions.Get(r, sessionName)
	session.Values[textKey] = signals.Text
	if err := session.Save(r, w); err != nil {
		s.logger.Debug("failed to save session", "error", err, "request_id", RequestID(r.Context()))
	}

	sse := datastar.NewSSE(w, r)
	suggestions := s.analyze("playground", signals.Text, nil)
	if err := sse.PatchElementTempl(resultsView(signals.Text, suggestions)); err != nil {
		_ = sse.ConsoleError(err)
	}
}
