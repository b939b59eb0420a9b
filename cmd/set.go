package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OTrepse/jsoncrack.com/internal/editor"
	"github.com/OTrepse/jsoncrack.com/internal/navigator"
	"github.com/OTrepse/jsoncrack.com/pkg/loader"
	"github.com/OTrepse/jsoncrack.com/pkg/logger"
	"github.com/OTrepse/jsoncrack.com/pkg/settings"
)

type setOptions struct {
	valueType  string
	dryRun     bool
	diff       bool
	mergePatch bool
	backup     bool
}

type documentStore interface {
	editor.Persister
	Contents() string
}

func newSetCmd() *cobra.Command {
	opts := &setOptions{}
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set the value of a node and write the document back",
		Long: `Set the node at <path> to <value> converted to --type, then rewrite the
document with two-space indentation. The root cannot be set. Missing
intermediate keys are created as objects.

Types:
  string   the value as typed
  number   a decimal or 0x/0o/0b literal
  boolean  true when the value is "true" in any case, false otherwise
  null     the value is ignored

With "-" as <file> the document is read from stdin and the result printed.`,
		Example: `  nodeedit set config.json 'server.port' 8080 --type number
  nodeedit set config.json '$["feature-flags"]["beta"]' true --type boolean --diff`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0], args[1], args[2])
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.valueType, "type", "t", "", "value type: string|number|boolean|null (default from config or string)")
	f.BoolVar(&opts.dryRun, "dry-run", false, "print the updated document instead of writing it")
	f.BoolVar(&opts.diff, "diff", false, "print a unified diff of the change")
	f.BoolVar(&opts.mergePatch, "merge-patch", false, "print the change as an RFC 7386 merge patch")
	f.BoolVar(&opts.backup, "backup", false, "keep the previous document as <file>.bak")
	return cmd
}

func (o *setOptions) run(cmd *cobra.Command, file, pathText, raw string) error {
	ctx := cmd.Context()
	run := settings.FromContextOrDefault(ctx)
	lgr := logger.WithValues(logger.FromContext(ctx), logger.DocumentKey, displayFile(file))

	typeName := run.DefaultType
	if cmd.Flags().Changed("type") {
		typeName = o.valueType
	}
	kind, err := parseEditableKind(typeName)
	if err != nil {
		return err
	}
	path, err := navigator.ParsePath(pathText)
	if err != nil {
		return err
	}

	var (
		store     documentStore
		fileStore *loader.FileStore
		dryRun    = o.dryRun || run.DryRun
	)
	if file == loader.StdinName {
		text, err := loader.ReadDocument(file, cmd.InOrStdin())
		if err != nil {
			return err
		}
		store = loader.NewMemoryStore(text)
		dryRun = true
	} else {
		fileStore, err = loader.OpenFileStore(file,
			loader.WithBackup(o.backup || run.Backup),
			loader.WithLogger(*lgr))
		if err != nil {
			return err
		}
		store = fileStore
	}
	before := store.Contents()

	node := navigator.Node{Path: path}
	if doc, err := navigator.Decode(before); err == nil {
		if found, ok := navigator.NodeAtPath(doc, path); ok {
			node = found
		}
	}

	notifier := cliNotifier{w: cmd.ErrOrStderr(), quiet: run.IsQuiet || dryRun, lgr: *lgr}
	session := editor.NewSession(store, notifier)
	if err := session.BeginEdit(ctx, node); err != nil {
		return err
	}
	session.SetDraft(raw, kind)
	after, err := session.Save(logger.WithLogger(ctx, lgr), before, node, session.Draft())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.diff {
		d, err := unifiedDiff(displayFile(file), before, after)
		if err != nil {
			return err
		}
		fmt.Fprint(out, d)
	}
	if o.mergePatch {
		p, err := mergePatch(before, after)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, p)
	}
	if dryRun {
		if !o.diff && !o.mergePatch {
			fmt.Fprintln(out, after)
		}
		return nil
	}
	return fileStore.Flush()
}
