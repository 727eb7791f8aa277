package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patterns/fstree"
	"github.com/katalvlaran/patterns/internal/logger"
	"github.com/katalvlaran/patterns/iterator"
)

func newIteratorCmd() *cobra.Command {
	var treePath string

	cmd := &cobra.Command{
		Use:   "iterator",
		Short: "Depth-first and breadth-first walks of a file tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), iteratorDemo(treePath))
		},
	}
	cmd.Flags().StringVar(&treePath, "tree", "", "YAML file describing the tree to walk (default: built-in sample)")

	return cmd
}

// iteratorDemo walks the sample tree, or the tree loaded from path when set.
func iteratorDemo(path string) demo {
	return demo{
		name:  "iterator",
		short: "Depth-first and breadth-first walks of a file tree",
		run: func(w io.Writer) error {
			if path == "" {
				return iterator.Demo(w)
			}
			root, err := loadTree(path)
			if err != nil {
				return err
			}
			logger.L().Debug("tree.loaded", "path", path, "nodes", fstree.Count(root))

			return iterator.Print(w, root)
		},
	}
}

func loadTree(path string) (fstree.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tree: %w", err)
	}
	defer f.Close()

	return fstree.DecodeYAML(f)
}

func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every demo in turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			all := make([]demo, 0, len(demos)+1)
			for _, d := range demos {
				if d.name == "pubsub" {
					all = append(all, iteratorDemo(""))
				}
				all = append(all, d)
			}
			for i, d := range all {
				if i > 0 {
					fmt.Fprintln(w)
				}
				if err := runDemo(w, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
