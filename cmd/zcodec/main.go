// Command zcodec encodes eye-space depths to depth-buffer values, or
// decodes them back, one number per line.
//
// Values come from the arguments or, if there are none, from stdin.
// Negative arguments need a "--" first:
//
//	zcodec -near 1 -far 50 -- -1 -20 -50
//	echo 0.5 | zcodec -mode decode -check
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"depthlab/depth"
)

const (
	exitOK     = 0
	exitDomain = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("zcodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		near  = fs.Float64("near", 1, "Near clip-plane distance.")
		far   = fs.Float64("far", 50, "Far clip-plane distance.")
		mode  = fs.String("mode", "encode", "encode|decode.")
		check = fs.Bool("check", false, "Also print the round-trip error.")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	p, err := depth.NewParams(*near, *far)
	if err != nil {
		fmt.Fprintf(stderr, "zcodec: %v\n", err)
		return exitUsage
	}

	var fwd, back func(float64) (float64, error)
	switch strings.ToLower(*mode) {
	case "encode":
		fwd, back = p.Encode, p.Decode
	case "decode":
		fwd, back = p.Decode, p.Encode
	default:
		fmt.Fprintf(stderr, "zcodec: unknown mode: %s\n", *mode)
		return exitUsage
	}

	var in io.Reader = stdin
	if fs.NArg() > 0 {
		in = strings.NewReader(strings.Join(fs.Args(), "\n"))
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	code := exitOK
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for n := 1; sc.Scan(); n++ {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			fmt.Fprintf(stderr, "zcodec: value %d: %q is not a number\n", n, tok)
			return exitUsage
		}
		r, err := fwd(v)
		if err != nil {
			fmt.Fprintf(stderr, "zcodec: value %d: %v\n", n, err)
			if errors.Is(err, depth.ErrNonFinite) {
				code = exitDomain
				continue
			}
			return exitUsage
		}
		if !*check {
			fmt.Fprintln(w, formatFloat(r))
			continue
		}
		rt, err := back(r)
		if err != nil {
			fmt.Fprintf(stderr, "zcodec: value %d: round trip: %v\n", n, err)
			code = exitDomain
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", formatFloat(r), formatFloat(rt-v))
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(stderr, "zcodec: read: %v\n", err)
		return exitUsage
	}
	return code
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
