package main

import (
	"fmt"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDecodeCommand(a *app) *cobra.Command {
	var inPlace, separator bool
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode the COBS frames in a file (or stdin)",
		Long: `Decode reads delimited COBS frames from a file (or stdin) and writes the
decoded content of each one to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			inputBytes := len(input)

			out := cmd.OutOrStdout()
			var s cobs.Scanner
			var buf []byte
			count, outputBytes := 0, 0
			s.Reset(input)
			for s.Next() {
				var decoded []byte
				if inPlace {
					decoded, err = s.DecodeInPlace()
				} else {
					buf, err = cobs.AppendDecode(buf[:0], s.Encoded())
					decoded = buf
				}
				if err != nil {
					return fmt.Errorf("decoding record %d: %w", count, err)
				}
				a.logger.Debug("decoded record",
					zap.Int("record", count),
					zap.Int("encoded_bytes", len(s.Encoded())),
					zap.Int("decoded_bytes", len(decoded)))

				if _, err := out.Write(decoded); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
				outputBytes += len(decoded)
				if separator {
					if _, err := out.Write([]byte{'\n'}); err != nil {
						return fmt.Errorf("writing output: %w", err)
					}
					outputBytes++
				}
				count++
			}

			a.logger.Info("decoded",
				zap.Int("records", count),
				zap.Int("input_bytes", inputBytes),
				zap.Int("output_bytes", outputBytes))
			return nil
		},
	}
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "decode each frame over its own input buffer")
	cmd.Flags().BoolVar(&separator, "separator", false, "write a newline after each decoded record")
	return cmd
}
