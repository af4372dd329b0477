// Command lcs prints longest-common-subsequence tables, one LCS, one maximal
// matching and the number of maximal matchings for two strings, and checks
// caller-supplied matchings.
//
//	lcs analyze AGCAT GAC
//	lcs --format json analyze --counting big ABCBDAB BDCABA
//	lcs validate --matching '[[0,2],[0,1]]' ABC ACB
//	lcs lattice ABC ACB
package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/lcskit/lcs"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

// newApp wires the command tree to the given sinks.
func newApp(stdout, stderr io.Writer) *cli.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	beforeFn := func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool(globalVerbose) {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		return validateFormat(c.String(globalFormat))
	}

	return &cli.App{
		Name:      "lcs",
		Usage:     "Longest common subsequence tables, matchings and matching counts",
		Flags:     globalFlags,
		Before:    beforeFn,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Print the LLCS and NLCS tables, one LCS and one maximal matching",
				ArgsUsage: "X Y",
				Flags:     mergeFlags(prefixFlags, analyzeFlags),
				Action: func(c *cli.Context) error {
					x, y, err := twoArgs(c)
					if err != nil {
						return err
					}
					mode, err := lcs.ParseCountMode(c.String(counting))
					if err != nil {
						return err
					}
					opts := lcs.DefaultOptions()
					opts.Counting = mode

					start := time.Now()
					a, err := lcs.NewStrings(x, y, opts)
					if err != nil {
						return fmt.Errorf("cannot build analysis: %w", err)
					}
					logger.Debug("analysis built",
						"M", a.M(), "N", a.N(), "counting", mode, "duration", time.Since(start))

					m, n := prefix(c, a)
					r, err := buildReport(a, m, n)
					if err != nil {
						return err
					}
					for _, p := range r.Problems {
						logger.Warn("self-check failed", "problem", p)
					}
					return writeReport(stdout, c.String(globalFormat), r)
				},
			},
			{
				Name:      "validate",
				Usage:     "Check whether a matching is valid and maximal",
				ArgsUsage: "X Y",
				Flags:     mergeFlags(prefixFlags, validateFlags),
				Action: func(c *cli.Context) error {
					x, y, err := twoArgs(c)
					if err != nil {
						return err
					}
					mt, err := parseMatching(c.String(matching))
					if err != nil {
						return err
					}
					opts := lcs.DefaultOptions()
					opts.Counting = lcs.CountNone
					a, err := lcs.NewStrings(x, y, opts)
					if err != nil {
						return fmt.Errorf("cannot build analysis: %w", err)
					}

					m, n := prefix(c, a)
					v := buildVerdict(a, mt, m, n)
					logger.Debug("matching checked", "m", m, "n", n, "valid", v.Valid, "maximal", v.Maximal)
					if err := writeVerdict(stdout, c.String(globalFormat), v); err != nil {
						return err
					}
					if !v.Valid {
						return cli.Exit("matching is not valid", 1)
					}
					return nil
				},
			},
			{
				Name:      "lattice",
				Usage:     "Print the raw lattice-path count table",
				ArgsUsage: "X Y",
				Action: func(c *cli.Context) error {
					x, y, err := twoArgs(c)
					if err != nil {
						return err
					}
					s, err := formatLattice(x, y)
					if err != nil {
						return err
					}
					_, err = io.WriteString(stdout, s)
					return err
				},
			},
		},
	}
}

// twoArgs returns the two positional strings X and Y.
func twoArgs(c *cli.Context) (string, string, error) {
	if c.NArg() != 2 {
		return "", "", fmt.Errorf("expecting exactly two arguments X and Y; got %d", c.NArg())
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

// prefix resolves the -m/-n flags; negative values select the whole sequence.
// Values beyond the sequence are passed through so the library reports them.
func prefix[T comparable](c *cli.Context, a *lcs.Analysis[T]) (int, int) {
	m, n := c.Int(prefixM), c.Int(prefixN)
	if m < 0 {
		m = a.M()
	}
	if n < 0 {
		n = a.N()
	}
	return m, n
}
