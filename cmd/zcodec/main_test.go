package main

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
)

func runCodec(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestEncodeArgs(t *testing.T) {
	code, out, errOut := runCodec(t, "", "-near", "1", "-far", "50", "--", "-1", "-50")
	if code != exitOK {
		t.Fatalf("code=%d stderr=%s", code, errOut)
	}
	lines := strings.Fields(out)
	if len(lines) != 2 {
		t.Fatalf("output=%q", out)
	}
	want := []float64{1, -1}
	for i, l := range lines {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil {
			t.Fatalf("parse %q: %v", l, err)
		}
		if math.Abs(v-want[i]) > 1e-12 {
			t.Fatalf("line %d=%v, want %v", i, v, want[i])
		}
	}
}

func TestDecodeStdinWithCheck(t *testing.T) {
	code, out, errOut := runCodec(t, "0.5\n-0.25 0\n", "-mode", "decode", "-check")
	if code != exitOK {
		t.Fatalf("code=%d stderr=%s", code, errOut)
	}
	rows := strings.Split(strings.TrimSpace(out), "\n")
	if len(rows) != 3 {
		t.Fatalf("rows=%q", rows)
	}
	for _, row := range rows {
		cols := strings.Split(row, "\t")
		if len(cols) != 2 {
			t.Fatalf("row %q", row)
		}
		rt, err := strconv.ParseFloat(cols[1], 64)
		if err != nil {
			t.Fatalf("parse %q: %v", cols[1], err)
		}
		if math.Abs(rt) > 1e-12 {
			t.Fatalf("round-trip error %v too large", rt)
		}
	}
}

func TestDomainErrorContinues(t *testing.T) {
	code, out, errOut := runCodec(t, "-2 0 -3")
	if code != exitDomain {
		t.Fatalf("code=%d, want %d", code, exitDomain)
	}
	if n := len(strings.Fields(out)); n != 2 {
		t.Fatalf("printed %d values, want 2: %q", n, out)
	}
	if !strings.Contains(errOut, "value 2") {
		t.Fatalf("stderr=%q does not name value 2", errOut)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "swapped planes", args: []string{"-near", "50", "-far", "1", "--", "-20"}},
		{name: "bad mode", args: []string{"-mode", "svg", "--", "-1"}},
		{name: "not a number", stdin: "abc"},
		{name: "unknown flag", args: []string{"-bogus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code, _, _ := runCodec(t, tt.stdin, tt.args...); code != exitUsage {
				t.Fatalf("code=%d, want %d", code, exitUsage)
			}
		})
	}
}
