package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd() *cobra.Command {
	var pointer bool
	cmd := &cobra.Command{
		Use:   "path <file> <path>",
		Short: "Print the canonical path of a node",
		Long: `Print the canonical path of the node addressed by <path>, for example
$["customer"][0]["id"]. The node must exist. Use "-" as <file> to read stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := loadNode(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			out := node.Path.Render()
			if pointer {
				out = node.Path.Pointer()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&pointer, "pointer", false, "print an RFC 6901 JSON Pointer instead")
	return cmd
}
