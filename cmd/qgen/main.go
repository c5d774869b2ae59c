// Command qgen generates fixed-point format tag types and prints format
// tables.
//
// Usage:
//
//	qgen [flags] [format ...]
//
// Formats are written Q<int>.<frac>, the integer part counting the sign bit.
// Without arguments the built-in formats are used. Each generated type
// carries constant guards that break the build when the format does not
// sit in the smallest storage type holding it.
//
// Examples:
//
//	qgen -pkg fixed -o formats.go Q1.15 Q3.13
//	qgen -info Q1.15 Q8.24
//	qgen -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/grailbio/base/log"
)

func main() {
	pkg := flag.String("pkg", "fixed", "package name of the generated file")
	out := flag.String("o", "", "output file (default stdout)")
	info := flag.Bool("info", false, "print a range table instead of generating code")
	list := flag.Bool("list", false, "list the built-in formats")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qgen [flags] [format ...]\n\n")
		fmt.Fprintf(os.Stderr, "Generates fixed-point format types for the fixed package.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, uses the built-in formats.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qgen -pkg fixed -o formats.go Q1.15 Q3.13\n")
		fmt.Fprintf(os.Stderr, "  qgen -info Q1.15 Q8.24\n")
		fmt.Fprintf(os.Stderr, "  qgen -list\n")
	}
	flag.Parse()

	if *list {
		for _, name := range builtin {
			fmt.Println(name)
		}
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = builtin
	}
	formats, err := parseFormats(names)
	if err != nil {
		log.Fatalf("qgen: %v", err)
	}

	if *info {
		if err := writeInfo(os.Stdout, formats); err != nil {
			log.Fatalf("qgen: write table: %v", err)
		}
		return
	}

	src, err := generate(*pkg, "qgen "+strings.Join(os.Args[1:], " "), formats)
	if err != nil {
		log.Fatalf("qgen: %v", err)
	}
	if *out == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			log.Fatalf("qgen: %v", err)
		}
		return
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("qgen: %v", err)
	}
	log.Debug.Printf("qgen: wrote %d formats to %s", len(formats), *out)
}
