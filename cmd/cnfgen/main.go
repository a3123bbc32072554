/*
cnfgen is a console utility converting context-free grammar descriptions to Chomsky Normal Form.
Usage is

	cnfgen convert [-f <format>] [-o <name>] [-p <name>] [--var <name>] [--steps] [-s <start>] [-v] <file>
	cnfgen show [-f <format>] [-o <name>] [-p <name>] [--var <name>] [-s <start>] [-v] <file>
	cnfgen check [-s <start>] [-v] <file>

convert normalizes the grammar and writes the result, show writes the grammar as is,
check tells whether the grammar is already in Chomsky Normal Form.

-f <format> defines output format: text (default), yaml, json, table, or go;

-o <name> defines output file name, default is standard output;

-p <name> defines Go package name for go format, default is dir name of output file;

--var <name> defines Go variable name for go format, default is the start symbol name;

--steps instructs convert to print the grammar produced by every normalization stage;

-s <name> defines EBNF start production, default is the first one;

-v enables debug logging to standard error;

<file> defines grammar description file, its format is detected by extension:
.bnf or .txt for text notation, .ebnf for EBNF, .yaml or .yml for YAML, .json for JSON.

Exit status is 1 if check finds a grammar not in normal form and 3 on any other error.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	e := NewCLI(os.Stdout, os.Stderr).Execute()
	if e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(exitCode(e))
	}
}
