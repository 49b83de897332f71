// Command codonalign provides a CLI for codon-aware pairwise sequence
// alignment.
//
// Usage:
//
//	codonalign [command] [options]
//
// Commands:
//
//	align       Align a query sequence against an annotated reference
//	cigar       Render or validate a CIGAR / edit-script string
//	version     Show version information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aria-lang/codonalign/internal/cigar"
	"github.com/aria-lang/codonalign/internal/diag"
	"github.com/aria-lang/codonalign/pkg/codonalign"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "align":
		alignCmd(os.Args[2:])
	case "cigar":
		cigarCmd(os.Args[2:])
	case "version":
		fmt.Println(codonalign.Info())
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`codonalign - Codon-Aware Pairwise Sequence Aligner

Usage:
  codonalign <command> [options]

Commands:
  align     Align a query sequence against an annotated reference
  cigar     Render or validate a CIGAR / edit-script string
  version   Show version information
  help      Show this help message

Use "codonalign <command> -h" for more information about a command.`)
}

func alignCmd(args []string) {
	fs := flag.NewFlagSet("align", flag.ExitOnError)
	refFasta := fs.String("ref", "", "Reference FASTA file (single record)")
	refCds := fs.String("cds", "", "Reference CDS annotation TSV file")
	queryFasta := fs.String("query", "", "Query FASTA file")
	ntWeight := fs.Int("nt-weight", 1, "Nucleotide score weight")
	aaWeight := fs.Int("aa-weight", 1, "Amino-acid score weight")
	fs.Parse(args)

	if *refFasta == "" || *refCds == "" || *queryFasta == "" {
		fmt.Fprintln(os.Stderr, "Error: -ref, -cds, and -query are all required")
		fs.Usage()
		os.Exit(1)
	}

	collector := &diag.Collector{}

	ref, err := codonalign.ReadAnnotatedReference(*refFasta, *refCds, *ntWeight, *aaWeight, collector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading reference: %v\n", err)
		os.Exit(1)
	}

	for _, d := range collector.Items() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", d)
	}

	queries, err := codonalign.ReadFASTA(*queryFasta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading query file: %v\n", err)
		os.Exit(1)
	}
	if len(queries) == 0 {
		fmt.Fprintln(os.Stderr, "No sequences found in query file")
		os.Exit(1)
	}

	a := codonalign.NewAligner(ref)

	for _, q := range queries {
		solution, err := a.Align(q.Sequence)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error aligning %q: %v\n", q.ID, err)
			os.Exit(1)
		}

		fmt.Printf("%s\tscore=%d\tcigar=%s\n", q.ID, solution.Score, solution.Cigar.String())
	}
}

func cigarCmd(args []string) {
	fs := flag.NewFlagSet("cigar", flag.ExitOnError)
	script := fs.String("script", "", "CIGAR/edit-script text to parse")
	fs.Parse(args)

	if *script == "" {
		fmt.Fprintln(os.Stderr, "Error: -script is required")
		fs.Usage()
		os.Exit(1)
	}

	parsed, warnings, err := cigar.ParseString(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing script: %v\n", err)
		os.Exit(1)
	}

	collector := &diag.Collector{}
	for _, w := range warnings {
		collector.Report(diag.BadCigarToken{Letter: w.Letter, Position: w.Position})
	}
	for _, d := range collector.Items() {
		fmt.Fprintf(os.Stderr, "warning: %v\n", d)
	}

	fmt.Printf("parsed:    %s\n", parsed.String())
	fmt.Printf("queryStart: %d\n", parsed.QueryStart())
	fmt.Printf("queryEnd:   %d\n", parsed.QueryEnd())
}
