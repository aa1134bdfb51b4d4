package main

import (
	"fmt"
	"strconv"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSizeCommand(a *app) *cobra.Command {
	var noDelimiter bool
	cmd := &cobra.Command{
		Use:   "size <input-bytes>",
		Short: "Print the largest possible encoded size of an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid input size %q: %w", args[0], err)
			}
			if n < 0 {
				return fmt.Errorf("invalid input size %d: must not be negative", n)
			}
			size := cobs.MaxEncodedLen(n, !noDelimiter)
			a.logger.Debug("computed encoded size",
				zap.Int("input_bytes", n),
				zap.Bool("delimited", !noDelimiter),
				zap.Int("max_encoded_bytes", size))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), size)
			return err
		},
	}
	cmd.Flags().BoolVar(&noDelimiter, "no-delimiter", false, "don't count a trailing delimiter")
	return cmd
}
