package editor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OTrepse/jsoncrack.com/internal/navigator"
)

type recordingStore struct {
	calls      int
	contents   string
	hasChanges bool
}

func (r *recordingStore) SetContents(contents string, hasChanges bool) {
	r.calls++
	r.contents = contents
	r.hasChanges = hasChanges
}

type recordingNotifier struct {
	successes []string
	failures  []string
}

func (r *recordingNotifier) Success(message string) { r.successes = append(r.successes, message) }
func (r *recordingNotifier) Failure(reason string)  { r.failures = append(r.failures, reason) }

const customerDoc = `{"customer":{"name":"Ada","tags":["x","y"]}}`

func selectNode(t *testing.T, text string, path navigator.Path) navigator.Node {
	t.Helper()
	doc, err := navigator.Decode(text)
	require.NoError(t, err)
	node, ok := navigator.NodeAtPath(doc, path)
	require.True(t, ok)
	return node
}

func TestSaveScenario(t *testing.T) {
	store := &recordingStore{}
	notifier := &recordingNotifier{}
	s := NewSession(store, notifier)
	ctx := context.Background()

	node := selectNode(t, customerDoc, navigator.Path{navigator.Field("customer"), navigator.Field("name")})
	require.NoError(t, s.BeginEdit(ctx, node))
	assert.Equal(t, Editing, s.State())
	assert.Equal(t, Draft{RawValue: "Ada", Type: navigator.KindString}, s.Draft())

	s.SetDraft("Grace", navigator.KindString)
	out, err := s.Save(ctx, customerDoc, node, s.Draft())
	require.NoError(t, err)

	want := `{
  "customer": {
    "name": "Grace",
    "tags": [
      "x",
      "y"
    ]
  }
}`
	assert.Equal(t, want, out)
	assert.Equal(t, 1, store.calls)
	assert.Equal(t, want, store.contents)
	assert.True(t, store.hasChanges)
	assert.Equal(t, Viewing, s.State())
	assert.Equal(t, NewDraft(), s.Draft())
	assert.Equal(t, []string{SavedMessage}, notifier.successes)
	assert.Empty(t, notifier.failures)
}

func TestBeginEditRejectsRoot(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewSession(&recordingStore{}, notifier)

	err := s.BeginEdit(context.Background(), selectNode(t, customerDoc, navigator.Path{}))
	require.ErrorIs(t, err, ErrRootEditRejected)
	assert.Equal(t, Viewing, s.State())
	assert.Equal(t, []string{ErrRootEditRejected.Error()}, notifier.failures)
}

func TestSaveRejectsRoot(t *testing.T) {
	store := &recordingStore{}
	s := NewSession(store, nil)
	_, err := s.Save(context.Background(), customerDoc, navigator.Node{}, Draft{RawValue: "x", Type: navigator.KindString})
	require.ErrorIs(t, err, ErrRootEditRejected)
	assert.Zero(t, store.calls)
}

func TestSaveFailuresLeaveDocumentUntouched(t *testing.T) {
	path := navigator.Path{navigator.Field("customer"), navigator.Field("name")}
	tests := []struct {
		name    string
		doc     string
		draft   Draft
		wantErr error
	}{
		{name: "malformed", doc: `{"customer":`, draft: Draft{RawValue: "x", Type: navigator.KindString}, wantErr: ErrMalformedDocument},
		{name: "bad escape", doc: `{"customer":{"name":"\q"}}`, draft: Draft{RawValue: "x", Type: navigator.KindString}, wantErr: ErrMalformedDocument},
		{name: "short unicode escape", doc: `{"customer":{"name":"\u12"}}`, draft: Draft{RawValue: "x", Type: navigator.KindString}, wantErr: ErrMalformedDocument},
		{name: "raw control character", doc: "{\"customer\":{\"name\":\"A\tda\"}}", draft: Draft{RawValue: "x", Type: navigator.KindString}, wantErr: ErrMalformedDocument},
		{name: "invalid utf-8", doc: "{\"customer\":{\"name\":\"\xff\"}}", draft: Draft{RawValue: "x", Type: navigator.KindString}, wantErr: ErrMalformedDocument},
		{name: "invalid number", doc: customerDoc, draft: Draft{RawValue: "abc", Type: navigator.KindNumber}, wantErr: ErrInvalidNumber},
		{name: "container type", doc: customerDoc, draft: Draft{RawValue: "{}", Type: navigator.KindObject}, wantErr: ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &recordingStore{}
			notifier := &recordingNotifier{}
			s := NewSession(store, notifier)
			node := navigator.Node{Path: path}

			out, err := s.Save(context.Background(), tt.doc, node, tt.draft)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out)
			assert.Zero(t, store.calls)
			assert.Equal(t, Editing, s.State())
			assert.Equal(t, tt.draft, s.Draft(), "draft is kept for correction")
			require.Len(t, notifier.failures, 1)
			assert.Equal(t, err.Error(), notifier.failures[0])
		})
	}
}

func TestSaveAfterCorrection(t *testing.T) {
	store := &recordingStore{}
	s := NewSession(store, nil)
	ctx := context.Background()
	doc := `{"count":1}`
	node := selectNode(t, doc, navigator.Path{navigator.Field("count")})

	require.NoError(t, s.BeginEdit(ctx, node))
	assert.Equal(t, Draft{Key: "", RawValue: "1", Type: navigator.KindNumber}, s.Draft())

	s.SetDraft("two", navigator.KindNumber)
	_, err := s.Save(ctx, doc, node, s.Draft())
	require.ErrorIs(t, err, ErrInvalidNumber)
	assert.Equal(t, "two", s.Draft().RawValue)

	s.SetDraft("2", navigator.KindNumber)
	out, err := s.Save(ctx, doc, node, s.Draft())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"count\": 2\n}", out)
	assert.Equal(t, 1, store.calls)
}

func TestCancelDiscardsDraft(t *testing.T) {
	store := &recordingStore{}
	s := NewSession(store, nil)
	node := selectNode(t, customerDoc, navigator.Path{navigator.Field("customer")})

	require.NoError(t, s.BeginEdit(context.Background(), node))
	s.SetDraft("changed", navigator.KindString)
	s.Cancel()

	assert.Equal(t, Viewing, s.State())
	assert.Equal(t, NewDraft(), s.Draft())
	assert.Zero(t, store.calls)
}

func TestDraftFromNode(t *testing.T) {
	tests := []struct {
		name string
		node navigator.Node
		want Draft
	}{
		{name: "no rows", node: navigator.Node{Path: navigator.Path{navigator.Field("a")}}, want: NewDraft()},
		{
			name: "keyed number",
			node: navigator.Node{Rows: []navigator.NodeRow{navigator.KeyedRow("n", navigator.Number("4.5"))}},
			want: Draft{Key: "n", RawValue: "4.5", Type: navigator.KindNumber},
		},
		{
			name: "boolean",
			node: navigator.Node{Rows: []navigator.NodeRow{navigator.ValueRow(navigator.Bool(false))}},
			want: Draft{RawValue: "false", Type: navigator.KindBoolean},
		},
		{
			name: "null",
			node: navigator.Node{Rows: []navigator.NodeRow{navigator.KeyedRow("z", navigator.Null())}},
			want: Draft{Key: "z", Type: navigator.KindNull},
		},
		{
			name: "container first row",
			node: navigator.Node{Rows: []navigator.NodeRow{navigator.KeyedRow("list", navigator.Array())}},
			want: Draft{Key: "list", Type: navigator.KindString},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DraftFromNode(tt.node))
		})
	}
}

func TestApplyKeepsUntouchedNumbers(t *testing.T) {
	out, err := Apply(`{"id":12345678901234567890,"price":1.50,"on":false}`,
		navigator.Path{navigator.Field("on")}, "TRUE", navigator.KindBoolean)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"id\": 12345678901234567890,\n  \"price\": 1.50,\n  \"on\": true\n}", out)
}

func TestApplyHugeIndexStaysBounded(t *testing.T) {
	path := navigator.Path{navigator.Field("a"), navigator.ArrayIndex(1 << 30)}
	out, err := Apply(`{"a":[1]}`, path, "1", navigator.KindNumber)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"1073741824\": 1\n  }\n}", out)
}

func TestApplyRejectsInvalidEscapes(t *testing.T) {
	_, err := Apply(`{"a":"\q"}`, navigator.Path{navigator.Field("b")}, "1", navigator.KindNumber)
	require.ErrorIs(t, err, ErrMalformedDocument)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "viewing", Viewing.String())
	assert.Equal(t, "editing", Editing.String())
}
