package editor

// Persister receives the updated document text after a successful save.
// The hand-off is fire and forget: the edit counts as applied once the text
// has been handed over.
type Persister interface {
	SetContents(contents string, hasChanges bool)
}

// Notifier receives the user-facing outcome of edit operations.
type Notifier interface {
	Success(message string)
	Failure(reason string)
}

type discardNotifier struct{}

func (discardNotifier) Success(string) {}
func (discardNotifier) Failure(string) {}
