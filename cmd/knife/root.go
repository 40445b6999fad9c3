package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/yokitheyo/knife"
)

var (
	fieldsFlag string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "knife -f fields [file ...]",
	Short: "Cut out whitespace-separated fields from lines of text",
	Long: `knife works like cut, but splits fields on runs of whitespace.

Fields are selected with a pattern:
  N    the N-th field (numbering starts at 1)
  -N   all fields up to the N-th (inclusive)
  N-   all fields from the N-th (inclusive)
  N-M  a closed range
and a comma-separated list combines them, like 1,3-5.
A colon may be used instead of a dash.

The selected fields are printed in the order they appear in the input,
joined with a single space. Input is read from the given files, or from
stdin when no files are given.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		// the pattern is parsed once, a bad pattern stops the run
		// before any input is touched
		k, err := knife.New(fieldsFlag)
		if err != nil {
			return err
		}
		return run(k, args, os.Stdout)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&fieldsFlag, "fields", "f", "", "fields to select, for example 1,3-5")
	rootCmd.MarkFlagRequired("fields")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// run processes every input, skipping files that cannot be opened. A skip
// is reported and counted, but the remaining files are still processed.
func run(k *knife.Knife, paths []string, out io.Writer) error {
	if len(paths) == 0 {
		processLines(k, os.Stdin, out)
		return nil
	}

	skipped := 0
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("skipping file")
			skipped++
			continue
		}
		processLines(k, f, out)
		f.Close()
	}
	if skipped > 0 {
		return fmt.Errorf("skipped %d of %d files", skipped, len(paths))
	}
	return nil
}

// processLines extracts fields line by line. A read error is reported and
// the rest of this input is abandoned, the caller moves on to the next one.
func processLines(k *knife.Knife, r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fmt.Fprintln(w, strings.Join(k.Extract(scanner.Text()), " "))
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("reading input")
	}
}
