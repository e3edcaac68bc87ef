package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mgnsk/slist"
	"github.com/mgnsk/slist/internal/script"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a YAML list script",
	Long: `Runs the operations of a YAML script against a new list and prints
one result line per operation. Use "-" to read the script from stdin.

Example script:
  limit: 0
  ops:
    - {op: push_back, value: 3}
    - {op: insert, value: 7, index: 2}
    - {op: pop_front}
    - {op: print}`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

var printCmd = &cobra.Command{
	Use:   "print [VALUES...]",
	Short: "Build a list from values and print it",
	Long: `Builds a list from values with PushBack and prints it.

Every argument is a value, so negative values need no "--" separator.
The command takes no flags.`,
	Example: "  slist print 3 -1 4",
	Args:    cobra.ArbitraryArgs,
	// Negative values would otherwise parse as shorthand flags.
	DisableFlagParsing: true,
	RunE:               printList,
}

var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse a list in text form and describe it",
	Args:  cobra.ExactArgs(1),
	RunE:  parseList,
}

func runScript(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()

	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	s, err := script.Load(r)
	if err != nil {
		return err
	}

	logger.Debug("running script", zap.String("file", args[0]), zap.Int("ops", len(s.Ops)))

	return script.NewRunner(logger).Run(cmd.Context(), s, cmd.OutOrStdout())
}

func printList(cmd *cobra.Command, args []string) error {
	l := slist.New(slist.WithLogger(logger))
	defer l.Free()

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid value '%s': %w", arg, err)
		}

		if err := l.PushBack(v); err != nil {
			return err
		}
	}

	return l.Fprint(cmd.OutOrStdout())
}

func parseList(cmd *cobra.Command, args []string) error {
	l, err := slist.Parse(args[0], slist.WithLogger(logger))
	if err != nil {
		return err
	}
	defer l.Free()

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "len: %d\nvalues: %v\ntext: %s\n", l.Len(), l.Values(), l)
	return err
}
