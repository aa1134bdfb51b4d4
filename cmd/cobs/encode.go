package main

import (
	"bytes"
	"fmt"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEncodeCommand(a *app) *cobra.Command {
	var noDelimiter, records bool
	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a file (or stdin) as COBS frames",
		Long: `Encode reads a file (or stdin) and writes it to stdout as a single COBS
frame followed by a delimiter.  With --records, each line of input becomes its
own frame.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			var encoded []byte
			count := 1
			if records {
				var builder cobs.RecordBuilder
				splitLines(input, &builder)
				var buf bytes.Buffer
				builder.Encode(&buf)
				encoded = buf.Bytes()
				count = builder.Records()
			} else {
				encoded = cobs.AppendEncode(nil, input, !noDelimiter)
			}

			if _, err := cmd.OutOrStdout().Write(encoded); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			a.logger.Info("encoded",
				zap.Int("records", count),
				zap.Int("input_bytes", len(input)),
				zap.Int("output_bytes", len(encoded)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noDelimiter, "no-delimiter", false, "don't append a trailing delimiter")
	cmd.Flags().BoolVar(&records, "records", false, "encode each line of input as a separate frame")
	cmd.MarkFlagsMutuallyExclusive("no-delimiter", "records")
	return cmd
}

// splitLines adds each newline-terminated line of input to builder as its
// own record.  The final line doesn't need a trailing newline.
func splitLines(input []byte, builder *cobs.RecordBuilder) {
	for len(input) > 0 {
		line := input
		if i := bytes.IndexByte(input, '\n'); i >= 0 {
			line, input = input[:i], input[i+1:]
		} else {
			input = nil
		}
		builder.Write(line)
		builder.FinishRecord()
	}
}
