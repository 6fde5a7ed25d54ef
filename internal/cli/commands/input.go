package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// stdinName is the display name of text read from standard input.
const stdinName = "<stdin>"

// document is a unit of prose to lint.
type document struct {
	Path string
	Text string
}

// isStdin reports whether path refers to standard input.
func isStdin(path string) bool {
	return path == "-"
}

// isHTML reports whether the file should be converted before linting.
func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// readDocument loads path, or stdin for "-". HTML files are converted to
// Markdown first so rules see prose instead of tags; reported positions
// refer to the converted text.
func readDocument(path string, stdin io.Reader) (document, error) {
	if isStdin(path) {
		if stdin == nil {
			return document{}, fmt.Errorf("no standard input available")
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return document{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return document{Path: stdinName, Text: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := string(data)
	if isHTML(path) {
		md, err := htmltomarkdown.ConvertString(text)
		if err != nil {
			return document{}, fmt.Errorf("failed to convert %s: %w", path, err)
		}
		text = md
	}
	return document{Path: path, Text: text}, nil
}
