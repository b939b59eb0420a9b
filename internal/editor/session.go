package editor

import (
	"context"
	"fmt"

	"github.com/OTrepse/jsoncrack.com/internal/formatter"
	"github.com/OTrepse/jsoncrack.com/internal/navigator"
	"github.com/OTrepse/jsoncrack.com/pkg/logger"
)

// State is the phase an edit session is in.
type State int

const (
	Viewing State = iota
	Editing
)

func (s State) String() string {
	if s == Editing {
		return "editing"
	}
	return "viewing"
}

// SavedMessage is the notification sent after a successful save.
const SavedMessage = "Node value updated"

// Draft is the transient state of an edit. Key is shown to the user but
// never written.
type Draft struct {
	Key      string
	RawValue string
	Type     navigator.Kind
}

// NewDraft returns the empty string-typed draft.
func NewDraft() Draft {
	return Draft{Type: navigator.KindString}
}

// DraftFromNode seeds a draft from the first row of node. Nodes without rows,
// or whose first row is a container, keep the empty string-typed draft.
func DraftFromNode(node navigator.Node) Draft {
	d := NewDraft()
	if len(node.Rows) == 0 {
		return d
	}
	row := node.Rows[0]
	d.Key = row.Key
	if !row.Type.IsScalar() {
		return d
	}
	d.Type = row.Type
	if row.Type != navigator.KindNull {
		d.RawValue = formatter.Stringify(row.Value)
	}
	return d
}

// Session runs edit transactions on one selected node at a time. The
// document is never held: Save receives the current text and hands the new
// text to the Persister. A Session is not safe for concurrent use.
type Session struct {
	store    Persister
	notifier Notifier

	state State
	node  navigator.Node
	draft Draft
}

// NewSession returns a session in the Viewing state. A nil notifier discards
// notifications.
func NewSession(store Persister, notifier Notifier) *Session {
	if notifier == nil {
		notifier = discardNotifier{}
	}
	return &Session{store: store, notifier: notifier, draft: NewDraft()}
}

func (s *Session) State() State { return s.state }

// Node returns the node being edited.
func (s *Session) Node() navigator.Node { return s.node }

// Draft returns the current draft.
func (s *Session) Draft() Draft { return s.draft }

// BeginEdit enters the Editing state for node with a draft seeded from its
// rows. The root node is rejected and the session is left as it was.
func (s *Session) BeginEdit(ctx context.Context, node navigator.Node) error {
	lgr := logger.FromContext(ctx)
	if node.Path.IsRoot() {
		lgr.V(1).Info("edit rejected", logger.PathKey, node.Path.Render())
		s.notifier.Failure(ErrRootEditRejected.Error())
		return ErrRootEditRejected
	}
	s.state = Editing
	s.node = node
	s.draft = DraftFromNode(node)
	lgr.V(1).Info("editing node", logger.PathKey, node.Path.Render(), "type", s.draft.Type.String())
	return nil
}

// SetDraft updates the raw text and declared type of the current draft.
func (s *Session) SetDraft(raw string, kind navigator.Kind) {
	s.draft.RawValue = raw
	s.draft.Type = kind
}

// Cancel discards the draft and returns to Viewing. Nothing is written.
func (s *Session) Cancel() {
	s.state = Viewing
	s.node = navigator.Node{}
	s.draft = NewDraft()
}

// Save applies draft to the node at node.Path of the document in
// documentText and hands the re-encoded document to the Persister.
//
// On success the session returns to Viewing and the new text is returned. On
// failure the session stays in Editing with the draft kept for correction,
// and the Persister is not called.
func (s *Session) Save(ctx context.Context, documentText string, node navigator.Node, draft Draft) (string, error) {
	lgr := logger.WithValues(logger.FromContext(ctx), logger.PathKey, node.Path.Render())

	updated, err := Apply(documentText, node.Path, draft.RawValue, draft.Type)
	if err != nil {
		s.state = Editing
		s.node = node
		s.draft = draft
		lgr.Info("save failed", "error", err.Error())
		s.notifier.Failure(err.Error())
		return "", err
	}

	s.store.SetContents(updated, true)
	s.Cancel()
	lgr.V(1).Info("node saved", "type", draft.Type.String(), "bytes", len(updated))
	s.notifier.Success(SavedMessage)
	return updated, nil
}

// Apply computes the document that results from setting the node at path to
// raw coerced to kind. It has no side effects.
func Apply(documentText string, path navigator.Path, raw string, kind navigator.Kind) (string, error) {
	if path.IsRoot() {
		return "", ErrRootEditRejected
	}
	doc, err := navigator.Decode(documentText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	v, err := Coerce(raw, kind)
	if err != nil {
		return "", err
	}
	return navigator.EncodeIndent(navigator.Replace(doc, path, v), navigator.DefaultIndent), nil
}
