package main

import "github.com/spf13/cobra"

func newLevelsCmd(rootConfig *rootConfiguration) *cobra.Command {
	var unbalanced bool
	cmd := &cobra.Command{
		Use:   "levels [file...]",
		Short: "Prints the number of nodes at every depth of the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := readCorpus(cmd, rootConfig, args)
			if err != nil {
				return err
			}
			tree, _ := fill(c, unbalanced)
			_, ls := depthStats(tree)
			writeLevels(cmd.OutOrStdout(), ls)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unbalanced, "unbalanced", false, "insert without rebalancing")
	return cmd
}
