package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fixed/internal/storage"
)

var (
	errSyntax    = errors.New("want Q<int>.<frac>")
	errNegative  = errors.New("negative bit count")
	errTooWide   = errors.New("wider than 32 bits")
	errDuplicate = errors.New("duplicate format")
)

// builtin is the format list the fixed package ships with.
var builtin = []string{
	"Q1.7", "Q2.6", "Q4.4",
	"Q1.15", "Q3.13", "Q4.12", "Q8.8",
	"Q1.31", "Q2.30", "Q4.28", "Q8.24", "Q16.16",
}

// qformat is one requested fixed-point format.
type qformat struct {
	Int   int
	Frac  int
	Width storage.Width
}

func parseFormat(s string) (qformat, error) {
	body, ok := strings.CutPrefix(strings.ToUpper(strings.TrimSpace(s)), "Q")
	if !ok {
		return qformat{}, fmt.Errorf("%q: %w", s, errSyntax)
	}
	is, fs, ok := strings.Cut(body, ".")
	if !ok {
		return qformat{}, fmt.Errorf("%q: %w", s, errSyntax)
	}
	i, err := strconv.Atoi(is)
	if err != nil {
		return qformat{}, fmt.Errorf("%q: %w", s, errSyntax)
	}
	f, err := strconv.Atoi(fs)
	if err != nil {
		return qformat{}, fmt.Errorf("%q: %w", s, errSyntax)
	}
	if i < 0 || f < 0 {
		return qformat{}, fmt.Errorf("%q: %w", s, errNegative)
	}
	w, ok := storage.Bucket(i + f)
	if !ok {
		return qformat{}, fmt.Errorf("%q: %w", s, errTooWide)
	}
	return qformat{Int: i, Frac: f, Width: w}, nil
}

func parseFormats(names []string) ([]qformat, error) {
	seen := make(map[qformat]bool, len(names))
	out := make([]qformat, 0, len(names))
	for _, name := range names {
		q, err := parseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[q] {
			return nil, fmt.Errorf("%s: %w", q.Label(), errDuplicate)
		}
		seen[q] = true
		out = append(out, q)
	}
	return out, nil
}

// Name is the Go type name, Q3_13 for Q3.13.
func (q qformat) Name() string { return fmt.Sprintf("Q%d_%d", q.Int, q.Frac) }

// Label is the conventional notation.
func (q qformat) Label() string { return fmt.Sprintf("Q%d.%d", q.Int, q.Frac) }

// Storage is the Go storage type.
func (q qformat) Storage() string { return fmt.Sprintf("int%d", q.Width) }

// Floor is the bit count the next smaller bucket can hold, or 0 for int8.
func (q qformat) Floor() int {
	if q.Width == storage.W8 {
		return 0
	}
	return int(q.Width)/2 + 1
}

func (q qformat) Min() string { return formatFloat(storage.Dequantize(q.Width.Min(), q.Frac)) }
func (q qformat) Max() string { return formatFloat(storage.Dequantize(q.Width.Max(), q.Frac)) }

func (q qformat) Resolution() string { return formatFloat(storage.Dequantize(1, q.Frac)) }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
