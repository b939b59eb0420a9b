package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/OTrepse/jsoncrack.com/internal/formatter"
	"github.com/OTrepse/jsoncrack.com/internal/limiter"
	"github.com/OTrepse/jsoncrack.com/internal/navigator"
)

func newViewCmd() *cobra.Command {
	var (
		output string
		window limiter.Config
	)
	cmd := &cobra.Command{
		Use:   "view <file> [path]",
		Short: "Print the content of a node",
		Long: `Print the scalar content of the node addressed by [path] (the root when
omitted). Objects and arrays show their scalar fields; nested containers are
left out. Use "-" as <file> to read stdin.

Output formats:
  json  fields as an indented JSON object, or the plain value of a scalar
  yaml  the same content as YAML
  rows  one tab-separated line per field: key, type, value

--limit, --offset and --tail select a window of the node's fields.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := window.Validate(); err != nil {
				return err
			}
			pathText := ""
			if len(args) > 1 {
				pathText = args[1]
			}
			node, err := loadNode(cmd, args[0], pathText)
			if err != nil {
				return err
			}
			node.Rows = limiter.Apply(window, node.Rows)
			return writeContent(cmd.OutOrStdout(), node, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json|yaml|rows")
	addWindowFlags(cmd.Flags(), &window)
	return cmd
}

func addWindowFlags(fs *pflag.FlagSet, window *limiter.Config) {
	fs.IntVar(&window.Limit, "limit", 0, "show only the first N fields")
	fs.IntVar(&window.Offset, "offset", 0, "skip the first N fields")
	fs.IntVar(&window.Tail, "tail", 0, "show only the last N fields")
}

func writeContent(w io.Writer, node navigator.Node, output string) error {
	var out string
	switch strings.ToLower(output) {
	case "json", "":
		out = formatter.RenderContent(node.Rows)
	case "yaml", "yml":
		s, err := formatter.RenderContentYAML(node.Rows)
		if err != nil {
			return err
		}
		out = s
	case "rows":
		out = renderRows(node.Rows)
		if out == "" {
			return nil
		}
	default:
		return fmt.Errorf("unknown output format %q (want json, yaml or rows)", output)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func renderRows(rows []navigator.NodeRow) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		key := "-"
		if row.HasKey {
			key = row.Key
		}
		value := ""
		if row.Type.IsScalar() {
			value = formatter.StringifySingleLine(row.Value)
		}
		lines = append(lines, key+"\t"+row.Type.String()+"\t"+value)
	}
	return strings.Join(lines, "\n")
}
