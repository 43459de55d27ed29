package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iyisakuma/pp-bench/PP/corpus"
	"github.com/iyisakuma/pp-bench/PP/parity"
)

func newClassifyCmd() *cobra.Command {
	var variantName string

	cmd := &cobra.Command{
		Use:   "classify WORD...",
		Short: "Print whether each word is a permutation of a palindrome",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parity.Lookup(variantName)
			if err != nil {
				return err
			}
			for _, w := range args {
				if err := corpus.Validate(w); err != nil {
					return fmt.Errorf("%q: %w", w, err)
				}
			}
			out := cmd.OutOrStdout()
			for _, w := range args {
				fmt.Fprintf(out, "%s %t\n", w, v.Str(w))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variantName, "variant", parity.NameBitmask, "classifier variant")
	return cmd
}
