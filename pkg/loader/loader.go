// Package loader reads documents from files or standard input and keeps the
// document text that edit sessions write back.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/OTrepse/jsoncrack.com/internal/navigator"
)

// ErrNoInput is returned when no file is named and standard input is an
// interactive terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe a document on stdin")

// StdinName is the file argument that selects standard input.
const StdinName = "-"

// ReadDocument returns the document text from path, or from stdin when path
// is empty or "-". It refuses to block on a terminal.
func ReadDocument(path string, stdin io.Reader) (string, error) {
	if path != "" && path != StdinName {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", ErrNoInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", ErrNoInput
	}
	return string(data), nil
}

// LoadDocument reads and decodes a document.
func LoadDocument(path string, stdin io.Reader) (*navigator.Value, error) {
	text, err := ReadDocument(path, stdin)
	if err != nil {
		return nil, err
	}
	doc, err := navigator.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", displayName(path), err)
	}
	return doc, nil
}

func displayName(path string) string {
	if path == "" || path == StdinName {
		return "stdin"
	}
	return path
}
