package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/iyisakuma/pp-bench/PP/corpus"
	"github.com/iyisakuma/pp-bench/PP/params"
	"github.com/iyisakuma/pp-bench/common"
)

func newGenCmd() *cobra.Command {
	var (
		className string
		count     int
		length    int
		seed      int64
		workers   int
		output    string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random corpus, one string per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := params.Lookup(className)
			if err != nil {
				return err
			}
			g := &corpus.Generator{
				NumStrings: class.NumStrings,
				Length:     class.StringLength,
				Seed:       class.Seed,
				Workers:    workers,
			}
			if cmd.Flags().Changed("count") {
				g.NumStrings = count
			}
			if cmd.Flags().Changed("length") {
				g.Length = length
			}
			if cmd.Flags().Changed("seed") {
				g.Seed = float64(seed)
			}

			logger := common.NewLogger(common.LogConfig{Output: cmd.ErrOrStderr(), Service: "pp-gen"})
			logger.Info("generating corpus",
				"class", class.Name,
				"strings", g.NumStrings,
				"length", g.Length,
				"path", output)

			n, err := g.WriteFile(cmd.Context(), output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d strings (%s) to %s\n",
				g.NumStrings, humanize.IBytes(uint64(n)), output)
			return nil
		},
	}
	cmd.Flags().StringVar(&className, "class", "S", "problem class (S, W, A, B)")
	cmd.Flags().IntVar(&count, "count", 0, "number of strings (overrides the class)")
	cmd.Flags().IntVar(&length, "length", 0, "string length (overrides the class)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "odd LCG seed in (1, 2^46)")
	cmd.Flags().IntVar(&workers, "workers", 0, "generator goroutines (0 = hardware)")
	cmd.Flags().StringVarP(&output, "output", "o", "random_strings.txt", "output path")
	return cmd
}
