// Command tinyfmt renders a format string through the bounded tinyfmt
// engine, which makes it handy for checking exactly what an embedded
// caller with a fixed buffer would see.
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/bjaus/tinyfmt"
	"github.com/spf13/cobra"
)

var (
	bufSize   int
	noNewline bool
	showLen   bool
)

var rootCmd = &cobra.Command{
	Use:   "tinyfmt FORMAT [ARG...]",
	Short: "Render a format string through the bounded tinyfmt engine",
	Long: `Render FORMAT and ARGs with tinyfmt's fixed-capacity printf engine.

Arguments that parse as integers or floats are passed as numbers;
everything else is passed as a string. The destination buffer has a
fixed capacity, so output beyond --size is truncated exactly the way an
embedded caller would see it.

Examples:
  tinyfmt '%05d' 42
  tinyfmt 'temp=%.1f C' 21.57
  tinyfmt --size 8 'id=%08x' 3735928559`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().IntVarP(&bufSize, "size", "s", 256, "destination buffer capacity in bytes")
	rootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "do not append a trailing newline")
	rootCmd.Flags().BoolVarP(&showLen, "length", "l", false, "print the logical length to stderr")
}

func run(cmd *cobra.Command, argv []string) error {
	if bufSize <= 0 {
		return fmt.Errorf("buffer size must be positive, got %d", bufSize)
	}
	args := make([]any, 0, len(argv)-1)
	for _, raw := range argv[1:] {
		args = append(args, parseArg(raw))
	}

	buf := make([]byte, bufSize)
	n := tinyfmt.Snprintf(buf, argv[0], args...)

	out := buf
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		out = buf[:i]
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return err
	}
	if !noNewline {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	if showLen {
		fmt.Fprintln(cmd.ErrOrStderr(), n)
	}
	if n >= bufSize {
		fmt.Fprintf(cmd.ErrOrStderr(), "tinyfmt: output truncated, %d bytes needed\n", n+1)
	}
	return nil
}

// parseArg maps a command-line token onto the natural Go type for the
// engine's argument coercion.
func parseArg(s string) any {
	if v, err := strconv.ParseInt(s, 0, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseUint(s, 0, 64); err == nil {
		return v
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return s
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
