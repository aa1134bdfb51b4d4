package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the state shared by every subcommand.
type app struct {
	logger  *zap.Logger
	verbose bool
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cobs",
		Short: "Encode and decode data with Consistent Overhead Byte Stuffing",
		Long: `cobs converts data to and from COBS frames.

An encoded frame never contains a zero byte, so frames can be separated on a
byte stream (a serial link, a log file) with a single 0x00 delimiter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger == nil {
				a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
			}
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every record")

	cmd.AddCommand(newEncodeCommand(a))
	cmd.AddCommand(newDecodeCommand(a))
	cmd.AddCommand(newSizeCommand(a))
	return cmd
}

// newLogger builds a console logger that writes to w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	return zap.New(core)
}

// readInput returns the contents of the file named by args, or of stdin if
// there is no file or the file is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
