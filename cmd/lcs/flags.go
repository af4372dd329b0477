package main

import (
	"github.com/urfave/cli/v2"
)

const (
	globalVerbose = "verbose"
	globalFormat  = "format"
)

var (
	globalFlags = []cli.Flag{
		&cli.BoolFlag{
			Name:  globalVerbose,
			Value: false,
			Usage: "Whether to enable debug logs on stderr.",
		},
		&cli.StringFlag{
			Name:  globalFormat,
			Value: formatText,
			Usage: "Output format: text, json or yaml.",
		},
	}
)

const (
	prefixM  = "m"
	prefixN  = "n"
	counting = "counting"
	matching = "matching"
)

var (
	prefixFlags = []cli.Flag{
		&cli.IntFlag{
			Name:  prefixM,
			Value: -1,
			Usage: "Length of the X prefix to analyse. Negative means the whole of X.",
		},
		&cli.IntFlag{
			Name:  prefixN,
			Value: -1,
			Usage: "Length of the Y prefix to analyse. Negative means the whole of Y.",
		},
	}

	analyzeFlags = []cli.Flag{
		&cli.StringFlag{
			Name:  counting,
			Value: "fixed",
			Usage: "Count table storage: fixed (uint64, overflow reported), big (exact) or none.",
		},
	}

	validateFlags = []cli.Flag{
		&cli.StringFlag{
			Name:     matching,
			Required: true,
			Usage: "Matching to check, as JSON: [[f...],[g...]] or {\"f\":[...],\"g\":[...]}. \n" +
				"f holds positions in X and g positions in Y.",
		},
	}
)

func mergeFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}
