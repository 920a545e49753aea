package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	cli "github.com/urfave/cli/v2"
)

var sortCmd = &cli.Command{
	Name:      "sort",
	Usage:     "sort integers, or lines with --lines, from a file or stdin to stdout",
	ArgsUsage: "[path]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "algorithm",
			Usage:   "smoothsort, introsort, cartesiantreesort or binaryquicksort",
			Value:   "introsort",
			EnvVars: []string{"SORTBENCH_ALGORITHM"},
		},
		&cli.BoolFlag{
			Name:  "lines",
			Usage: "treat the input as text lines instead of one integer per line",
		},
	},
	Action: func(cctx *cli.Context) error {
		alg, err := findAlgorithm(cctx.String("algorithm"))
		if err != nil {
			return err
		}

		var in io.Reader = os.Stdin
		if path := cctx.Args().First(); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		if cctx.Bool("lines") {
			if alg.runStrings == nil {
				return fmt.Errorf("%s sorts integers only; drop --lines or pick a comparison sort", alg.name)
			}
			return sortLines(alg, in, os.Stdout)
		}
		return sortIntegers(alg, in, os.Stdout)
	},
}

func sortIntegers(alg algorithm, in io.Reader, out io.Writer) error {
	var data []int
	scanner := newLineScanner(in)
	for lineno := 1; scanner.Scan(); lineno++ {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	alg.run(data, func(a, b int) bool { return a < b })

	w := bufio.NewWriter(out)
	for _, v := range data {
		fmt.Fprintln(w, v)
	}
	return w.Flush()
}

func sortLines(alg algorithm, in io.Reader, out io.Writer) error {
	var data []string
	scanner := newLineScanner(in)
	for scanner.Scan() {
		data = append(data, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	alg.runStrings(data, func(a, b string) bool { return a < b })

	w := bufio.NewWriter(out)
	for _, line := range data {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func newLineScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	// The default token limit is 64KiB; allow long lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}
