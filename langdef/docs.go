/*
Package langdef reads grammar descriptions and writes grammars back.

Supported description formats are: BNF-like text notation (Parse, ParseString, ParseBytes),
EBNF as understood by golang.org/x/exp/ebnf (ParseEBNF), and YAML or JSON grammar.Definition
documents (ParseYAML, ParseJSON). LoadFile picks the format using file name extension.

Text notation resembles BNF. Self-definition of this notation is:
*/
//  $space = /\s+/; $comment = /#[^\n]*/;
//  $string = /"(?:[^\\"\n]|\\.)*"|'[^'\n]*'/;
//  $name = /[\pL_][\pL\pM\pN_]*/;
//  $dir = /![a-z]+/;
//  $op = /->|→|::=|[|;]/;
//
//  # first rule defines the start symbol unless !start directive says otherwise
//  description = {directive | rule};
//  directive = '!start', $name, ';';
//  rule = $name, ('->' | '→' | '::='), alternative, {'|', alternative}, ';';
//  alternative = {$name | $string};
/*
Description must be a valid UTF-8 text. Line breaks are insignificant, comments start with # and end
with line feed.

Bare names denote non-terminals, every non-terminal used in a rule body must be defined by some rule.
Each non-terminal may be defined only once, but a rule may list any number of alternatives.
The name ε (U+03B5) denotes the empty string, so does an empty alternative or an empty string literal.

String literals denote terminals. Double-quoted strings may contain Go escape sequences,
single-quoted strings are taken literally. Terminal names may not contain whitespace.

Both names and string literals are converted to Unicode normalization form C.

An example of description:

	# balanced brackets
	S -> "(" S ")" S | ε;

	!start Expr;
	Expr → Expr "+" Term | Term;
	Term → "x" | "(" Expr ")";
*/
package langdef
