package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/richiks/go-sorting/introsort"
)

var benchCmd = &cli.Command{
	Name:  "bench",
	Usage: "time one algorithm against a generated input",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Usage:   "smoothsort, introsort, cartesiantreesort or binaryquicksort",
			Value:   "smoothsort",
			EnvVars: []string{"SORTBENCH_ALGORITHM"},
		},
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of elements to generate",
			Value: 1 << 16,
		},
		&cli.StringFlag{
			Name:  "pattern",
			Usage: "input distribution to generate",
			Value: "shuffled",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "generator seed, fixed so runs are reproducible",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "runs",
			Usage: "repetitions, the fastest is reported",
			Value: 3,
		},
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "check the Leonardo forest invariants after the grow phase (smoothsort only)",
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := newLogger(cctx.String("log-level"))

		alg, err := findAlgorithm(cctx.String("algorithm"))
		if err != nil {
			return err
		}

		pattern := cctx.String("pattern")
		n := cctx.Int("n")
		seed := cctx.Int64("seed")
		input, err := generate(pattern, seed, n)
		if err != nil {
			return err
		}
		logger.Debug("generated input", "pattern", pattern, "n", n, "seed", seed)

		if cctx.Bool("verify") {
			if alg.name != "smoothsort" {
				return fmt.Errorf("--verify checks the Leonardo forest and only applies to smoothsort, not %s", alg.name)
			}
			if err := verifyGrowPhase(input); err != nil {
				return fmt.Errorf("grow phase invariants: %w", err)
			}
			logger.Info("grow phase invariants hold", "n", n)
		}

		m, err := measure(alg, pattern, input, cctx.Int("runs"))
		if err != nil {
			return err
		}
		printMeasurements(os.Stdout, []measurement{m})
		return nil
	},
}

var compareCmd = &cli.Command{
	Name:  "compare",
	Usage: "run every algorithm against the same input, fastest first",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "n",
			Usage: "number of elements to generate",
			Value: 1 << 16,
		},
		&cli.StringFlag{
			Name:  "pattern",
			Usage: "input distribution to generate",
			Value: "shuffled",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "generator seed, fixed so runs are reproducible",
			Value: 1,
		},
		&cli.IntFlag{
			Name:  "runs",
			Usage: "repetitions per algorithm, the fastest is reported",
			Value: 3,
		},
	},
	Action: func(cctx *cli.Context) error {
		logger := newLogger(cctx.String("log-level"))

		pattern := cctx.String("pattern")
		n := cctx.Int("n")
		seed := cctx.Int64("seed")
		input, err := generate(pattern, seed, n)
		if err != nil {
			return err
		}
		logger.Debug("generated input", "pattern", pattern, "n", n, "seed", seed)

		runs := cctx.Int("runs")
		ms := make([]measurement, 0, len(algorithms))
		for _, alg := range algorithms {
			m, err := measure(alg, pattern, input, runs)
			if err != nil {
				return err
			}
			logger.Debug("measured", "algorithm", alg.name, "elapsed", m.elapsed)
			ms = append(ms, m)
		}

		introsort.SortFunc(ms, func(a, b measurement) bool { return a.elapsed < b.elapsed })
		printMeasurements(os.Stdout, ms)
		return nil
	},
}
