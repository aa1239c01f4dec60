// Command doccheck validates CPF and CNPJ numbers given as arguments or read
// one per line from a file. It exits with status 1 when any is invalid.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ecobytes/site-api/internal/document"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

type options struct {
	formatOnly bool
	file       string
}

func main() {
	var opts options
	flag.BoolVar(&opts.formatOnly, "format", false, "Print only the formatted documents")
	flag.StringVar(&opts.file, "file", "", "Read documents from a file, one per line")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: doccheck [-format] [-file path] [document ...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	inputs, err := loadInputs(flag.Args(), opts.file)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if len(inputs) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var bar *progressbar.ProgressBar
	if opts.file != "" {
		bar = newProgressBar(len(inputs))
	}

	if invalid := check(os.Stdout, inputs, opts.formatOnly, bar); invalid > 0 {
		os.Exit(1)
	}
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(color.BlueString("checking")),
		progressbar.OptionSetItsString("docs"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
}

// loadInputs returns the documents given as arguments followed by the lines
// of file, when set.
func loadInputs(args []string, file string) ([]string, error) {
	inputs := append([]string(nil), args...)
	if file == "" {
		return inputs, nil
	}
	lines, err := readLines(file)
	if err != nil {
		return nil, err
	}
	return append(inputs, lines...), nil
}

// readLines returns the non-blank lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// check validates every input, writes one line per input to w and returns
// how many were invalid. bar may be nil.
func check(w io.Writer, inputs []string, formatOnly bool, bar *progressbar.ProgressBar) int {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed)

	invalid := 0
	for _, in := range inputs {
		res := document.Validate(in)
		if !res.Valid {
			invalid++
		}

		switch {
		case formatOnly:
			fmt.Fprintln(w, res.Formatted)
		case res.Valid:
			ok.Fprintf(w, "OK      %-18s %s\n", res.Formatted, res.Kind)
		case res.Kind == document.KindInvalid:
			bad.Fprintf(w, "INVALID %-18s tamanho inválido (%d dígitos)\n", in, len(res.Digits))
		default:
			bad.Fprintf(w, "INVALID %-18s %s com dígito verificador incorreto\n", res.Formatted, res.Kind)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if !formatOnly && len(inputs) > 1 {
		fmt.Fprintf(w, "%d checked, %d invalid\n", len(inputs), invalid)
	}
	return invalid
}
