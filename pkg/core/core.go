// Package core is the library entry point: load a document, select a node by
// path, render its views, and apply single-node edits.
package core

import (
	"context"
	"fmt"

	"github.com/OTrepse/jsoncrack.com/internal/editor"
	"github.com/OTrepse/jsoncrack.com/internal/formatter"
	"github.com/OTrepse/jsoncrack.com/internal/navigator"
	"github.com/OTrepse/jsoncrack.com/pkg/loader"
)

type (
	// Value is an immutable JSON value with ordered object members.
	Value = navigator.Value
	// Path addresses a node from the document root; empty is the root.
	Path = navigator.Path
	// Segment is one object key or array index of a Path.
	Segment = navigator.Segment
	// Node is a selected node: its path and its display rows.
	Node = navigator.Node
	// NodeRow is one field of a Node.
	NodeRow = navigator.NodeRow
	// Kind is the JSON type of a Value.
	Kind = navigator.Kind
)

// ContentFormat selects how node content is rendered.
type ContentFormat string

const (
	ContentJSON ContentFormat = "json"
	ContentYAML ContentFormat = "yaml"
)

// Engine bundles the path, view, and edit operations.
type Engine struct {
	Notifier editor.Notifier
	Format   ContentFormat
}

// Option configures the Engine.
type Option func(*Engine)

// WithNotifier receives the outcome of every Edit.
func WithNotifier(n editor.Notifier) Option {
	return func(e *Engine) {
		e.Notifier = n
	}
}

// WithContentFormat sets the format used by Content.
func WithContentFormat(f ContentFormat) Option {
	return func(e *Engine) {
		e.Format = f
	}
}

// New creates an Engine with defaults.
func New(opts ...Option) *Engine {
	engine := &Engine{Format: ContentJSON}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// LoadRoot parses document text.
func LoadRoot(text string) (*Value, error) {
	return navigator.Decode(text)
}

// LoadFile reads and parses a document file.
func LoadFile(path string) (*Value, error) {
	if path == "" {
		return nil, fmt.Errorf("no document path given")
	}
	return loader.LoadDocument(path, nil)
}

// ParsePath parses a user-typed path such as `$["a"][0]` or `a.0`.
func ParsePath(text string) (Path, error) {
	return navigator.ParsePath(text)
}

// ParseKind maps a type name such as "number" to its Kind.
func ParseKind(name string) (Kind, bool) {
	return navigator.ParseKind(name)
}

// Select returns the node at path.
func (e *Engine) Select(doc *Value, path Path) (Node, error) {
	node, ok := navigator.NodeAtPath(doc, path)
	if !ok {
		return Node{}, fmt.Errorf("no node at %s", path.Render())
	}
	return node, nil
}

// PathString is the canonical path of node.
func (e *Engine) PathString(node Node) string {
	return node.Path.Render()
}

// Content renders the content view of node in the Engine format.
func (e *Engine) Content(node Node) (string, error) {
	if e.Format == ContentYAML {
		return formatter.RenderContentYAML(node.Rows)
	}
	return formatter.RenderContent(node.Rows), nil
}

// Edit sets the node at path in the document text to raw coerced to kind and
// returns the new document text.
func (e *Engine) Edit(ctx context.Context, text string, path Path, raw string, kind Kind) (string, error) {
	store := loader.NewMemoryStore(text)
	session := editor.NewSession(store, e.Notifier)
	node := Node{Path: path}
	if err := session.BeginEdit(ctx, node); err != nil {
		return "", err
	}
	session.SetDraft(raw, kind)
	return session.Save(ctx, store.Contents(), node, session.Draft())
}
