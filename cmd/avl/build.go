package main

import (
	"fmt"
	"io"
	"time"

	"github.com/g-m-twostay/go-avl/Trees"
	"github.com/spf13/cobra"
)

type buildConfig struct {
	Unbalanced bool
	Print      bool
	Top        int
}

func newBuildCmd(rootConfig *rootConfiguration) *cobra.Command {
	config := &buildConfig{}
	var cmd = &cobra.Command{
		Use:   "build [file...]",
		Short: "Inserts the words of the inputs into a tree and reports on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, rootConfig, config, args)
		},
	}
	cmd.Flags().BoolVar(&config.Unbalanced, "unbalanced", false, "insert without rebalancing")
	cmd.Flags().BoolVarP(&config.Print, "print", "p", false, "print the tree sideways after the report")
	cmd.Flags().IntVar(&config.Top, "top", 0, "list the n most frequent words")
	return cmd
}

func runBuild(cmd *cobra.Command, rootConfig *rootConfiguration, config *buildConfig, args []string) error {
	c, err := readCorpus(cmd, rootConfig, args)
	if err != nil {
		return err
	}
	tree, took := fill(c, config.Unbalanced)
	rootConfig.log.Info().Uint("size", tree.Size()).Dur("took", took).Bool("unbalanced", config.Unbalanced).Msg("tree built")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "words:    %d\n", c.total())
	fmt.Fprintf(out, "distinct: %d\n", tree.Size())
	var checkErr error
	if config.Unbalanced {
		fmt.Fprintf(out, "height:   %d\n", tree.ComputeHeight())
		checkErr = tree.CheckStructure()
	} else {
		fmt.Fprintf(out, "height:   %d\n", tree.Height())
		checkErr = tree.Check()
	}
	if checkErr != nil {
		return fmt.Errorf("tree check failed: %w", checkErr)
	}
	fmt.Fprintln(out, "check:    ok")

	if config.Top > 0 {
		fmt.Fprintln(out)
		for _, wc := range c.top(config.Top) {
			fmt.Fprintf(out, "%8d %s\n", wc.count, wc.word)
		}
	}
	if config.Print {
		fmt.Fprintln(out)
		if err := tree.PrintStructure(out); err != nil {
			return fmt.Errorf("printing tree: %w", err)
		}
	}
	return nil
}

// fill inserts the words of c into a new tree, input by input.
func fill(c *corpus, unbalanced bool) (*Trees.StringTree, time.Duration) {
	tree := Trees.NewStringTree()
	insert := tree.Insert
	if unbalanced {
		insert = tree.InsertUnbalanced
	}
	start := time.Now()
	for _, ws := range c.words {
		for _, w := range ws {
			insert(w)
		}
	}
	return tree, time.Since(start)
}

// depthStats returns the mean depth of the nodes and the node count per depth.
func depthStats(tree *Trees.StringTree) (float64, []int) {
	var sum, n int
	var ls []int
	tree.LevelOrder(func(d int, _ Trees.Node[string, uint32]) bool {
		if d == len(ls) {
			ls = append(ls, 0)
		}
		ls[d]++
		sum += d
		n++
		return true
	})
	if n == 0 {
		return 0, ls
	}
	return float64(sum) / float64(n), ls
}

func writeLevels(w io.Writer, ls []int) {
	for d, n := range ls {
		fmt.Fprintf(w, "%3d %d\n", d, n)
	}
}
