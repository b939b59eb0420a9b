package cmd

import (
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-logr/logr"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/OTrepse/jsoncrack.com/internal/editor"
	"github.com/OTrepse/jsoncrack.com/internal/navigator"
	"github.com/OTrepse/jsoncrack.com/pkg/loader"
)

// selectNode decodes text and returns the node at the path typed by the user.
func selectNode(text, pathText string) (navigator.Node, error) {
	path, err := navigator.ParsePath(pathText)
	if err != nil {
		return navigator.Node{}, err
	}
	doc, err := navigator.Decode(text)
	if err != nil {
		return navigator.Node{}, fmt.Errorf("%w: %v", editor.ErrMalformedDocument, err)
	}
	node, ok := navigator.NodeAtPath(doc, path)
	if !ok {
		return navigator.Node{}, fmt.Errorf("no node at %s", path.Render())
	}
	return node, nil
}

// loadNode reads the document named by file ("-" for stdin) and selects a node in it.
func loadNode(cmd *cobra.Command, file, pathText string) (navigator.Node, error) {
	text, err := loader.ReadDocument(file, cmd.InOrStdin())
	if err != nil {
		return navigator.Node{}, err
	}
	return selectNode(text, pathText)
}

// parseEditableKind maps a --type value to a Kind accepted by the editor.
func parseEditableKind(name string) (navigator.Kind, error) {
	kind, ok := navigator.ParseKind(strings.ToLower(strings.TrimSpace(name)))
	if !ok || !kind.IsScalar() {
		return navigator.KindNull, fmt.Errorf("%w: %q (want string, number, boolean or null)", editor.ErrUnsupportedType, name)
	}
	return kind, nil
}

// unifiedDiff renders a unified diff between two document versions.
func unifiedDiff(name, before, after string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name,
		ToFile:   name + " (edited)",
		Context:  3,
	})
}

// mergePatch returns the RFC 7386 merge patch that turns before into after.
func mergePatch(before, after string) (string, error) {
	patch, err := jsonpatch.CreateMergePatch([]byte(before), []byte(after))
	if err != nil {
		return "", fmt.Errorf("creating merge patch: %w", err)
	}
	return string(patch), nil
}

// cliNotifier reports edit outcomes. Successes go to w unless quiet; failures
// are only logged since the command returns the error itself.
type cliNotifier struct {
	w     io.Writer
	quiet bool
	lgr   logr.Logger
}

func (n cliNotifier) Success(message string) {
	n.lgr.V(1).Info("edit succeeded", "message", message)
	if !n.quiet {
		fmt.Fprintln(n.w, message)
	}
}

func (n cliNotifier) Failure(reason string) {
	n.lgr.V(1).Info("edit failed", "reason", reason)
}

func displayFile(file string) string {
	if file == "" || file == loader.StdinName {
		return "stdin"
	}
	return file
}
