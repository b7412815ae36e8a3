package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCompareCmd(rootConfig *rootConfiguration) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [file...]",
		Short: "Builds a balanced and an unbalanced tree from the same words and compares them",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := readCorpus(cmd, rootConfig, args)
			if err != nil {
				return err
			}
			avl, avlTook := fill(c, false)
			bst, bstTook := fill(c, true)
			if err := avl.Check(); err != nil {
				return fmt.Errorf("balanced tree check failed: %w", err)
			}
			if err := bst.CheckStructure(); err != nil {
				return fmt.Errorf("unbalanced tree check failed: %w", err)
			}
			rootConfig.log.Debug().Dur("balanced", avlTook).Dur("unbalanced", bstTook).Msg("trees built")

			avlDepth, _ := depthStats(avl)
			bstDepth, _ := depthStats(bst)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "\tbalanced\tunbalanced")
			fmt.Fprintf(tw, "size\t%d\t%d\n", avl.Size(), bst.Size())
			fmt.Fprintf(tw, "height\t%d\t%d\n", avl.Height(), bst.ComputeHeight())
			fmt.Fprintf(tw, "mean depth\t%.2f\t%.2f\n", avlDepth, bstDepth)
			fmt.Fprintf(tw, "insert time\t%v\t%v\n", avlTook, bstTook)
			return tw.Flush()
		},
	}
}
