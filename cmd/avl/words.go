package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-avl/Sets"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var errStdinTwice = errors.New("stdin (-) given more than once")

// corpus is the tokenised content of all inputs.
type corpus struct {
	// words of every input in the order they appear; inputs in argument order.
	words [][]string
	// occurrences of each distinct word.
	counts *hashmap.Map[string, *atomic.Int64]
}

type wordFilter struct {
	lower   bool
	exclude *Sets.TreeSet[string]
}

// normalize strips the punctuation around w. Returns "" for words that are to be skipped.
func (f wordFilter) normalize(w string) string {
	w = strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	if f.lower {
		w = strings.ToLower(w)
	}
	if w == "" || f.exclude.Has(w) {
		return ""
	}
	return w
}

// readCorpus tokenises the named files in parallel, stdin when there are none or a name is "-".
func readCorpus(cmd *cobra.Command, config *rootConfiguration, names []string) (*corpus, error) {
	if len(names) == 0 {
		names = []string{"-"}
	}
	stdin := 0
	for _, name := range names {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, errStdinTwice
	}
	filter := wordFilter{lower: config.Lower, exclude: Sets.NewTreeSet[string]()}
	for _, w := range config.Exclude {
		if config.Lower {
			w = strings.ToLower(w)
		}
		filter.exclude.Put(w)
	}
	c := &corpus{words: make([][]string, len(names)), counts: hashmap.New[string, *atomic.Int64]()}

	g, ctx := errgroup.WithContext(cmd.Context())
	for i, name := range names {
		g.Go(func() error {
			r, err := openInput(cmd, name)
			if err != nil {
				return err
			}
			defer r.Close()
			ws, err := tokenize(ctx, r, filter, c.counts)
			if err != nil {
				return fmt.Errorf("reading %s: %w", name, err)
			}
			c.words[i] = ws
			config.log.Debug().Str("input", name).Int("words", len(ws)).Msg("tokenised")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return c, nil
}

func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

func tokenize(ctx context.Context, r io.Reader, filter wordFilter, counts *hashmap.Map[string, *atomic.Int64]) ([]string, error) {
	var ws []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		if len(ws)%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		w := filter.normalize(sc.Text())
		if w == "" {
			continue
		}
		n, _ := counts.GetOrInsert(w, new(atomic.Int64))
		n.Add(1)
		ws = append(ws, w)
	}
	return ws, sc.Err()
}

// total number of words in c.
func (c *corpus) total() (n int) {
	for _, ws := range c.words {
		n += len(ws)
	}
	return
}

type wordCount struct {
	word  string
	count int64
}

// top k most frequent words, ties in ascending word order.
func (c *corpus) top(k int) []wordCount {
	all := make([]wordCount, 0, c.counts.Len())
	c.counts.Range(func(w string, n *atomic.Int64) bool {
		all = append(all, wordCount{w, n.Load()})
		return true
	})
	slices.SortFunc(all, func(a, b wordCount) int {
		if a.count != b.count {
			return cmp.Compare(b.count, a.count)
		}
		return cmp.Compare(a.word, b.word)
	})
	return all[:min(k, len(all))]
}
