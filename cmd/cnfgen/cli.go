package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava12/cnf"
	"github.com/ava12/cnf/grammar"
	"github.com/ava12/cnf/langdef"
)

type options struct {
	format      string
	output      string
	packageName string
	varName     string
	start       string
	steps       bool
	verbose     bool
}

// NewCLI creates root command writing results to stdout and diagnostics to stderr.
func NewCLI(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "cnfgen",
		Short:         "Convert context-free grammars to Chomsky Normal Form",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&opts.start, "start", "s", "", "EBNF start production, default is the first one")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(convertCmd(opts), showCmd(opts), checkCmd(opts))
	return root
}

func addOutputFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", textFormat, "output format: text, yaml, json, table, or go")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file name, default is standard output")
	cmd.Flags().StringVarP(&opts.packageName, "package", "p", "", "Go package name, default is dir name of output file")
	cmd.Flags().StringVar(&opts.varName, "var", "", "Go variable name, default is the start symbol name")
}

func convertCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert grammar to Chomsky Normal Form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertHandler(cmd, opts, args[0])
		},
	}
	addOutputFlags(cmd, opts)
	cmd.Flags().BoolVar(&opts.steps, "steps", false, "print grammar produced by every stage")
	return cmd
}

func showCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print grammar description in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showHandler(cmd, opts, args[0])
		},
	}
	addOutputFlags(cmd, opts)
	return cmd
}

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check whether grammar is in Chomsky Normal Form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkHandler(cmd, opts, args[0])
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func load(logger *slog.Logger, fileName, start string) (*grammar.Grammar, error) {
	g, e := langdef.LoadFile(fileName, start)
	if e != nil {
		return nil, e
	}

	logger.Debug("grammar loaded",
		"file", fileName,
		"format", langdef.FormatOf(fileName).String(),
		"start", g.Start(),
		"nonterminals", len(g.NonTerminals()),
		"terminals", len(g.Terminals()),
		"rules", g.RuleCount(),
	)
	return g, nil
}

func convertHandler(cmd *cobra.Command, opts *options, fileName string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	if e := checkFormat(opts.format); e != nil {
		return e
	}

	g, e := load(logger, fileName, opts.start)
	if e != nil {
		return e
	}

	if nullable := g.Nullable(); len(nullable) > 0 {
		logger.Debug("nullable symbols", "symbols", nullable)
	}
	if opts.steps {
		fmt.Fprintf(cmd.OutOrStdout(), "Original grammar:\n%s", g)
	}

	result := g.Normalize(func(stage grammar.Stage, sg *grammar.Grammar) {
		logger.Debug("stage done",
			"stage", stage.String(),
			"nonterminals", len(sg.NonTerminals()),
			"terminals", len(sg.Terminals()),
			"rules", sg.RuleCount(),
		)
		if opts.steps {
			fmt.Fprintf(cmd.OutOrStdout(), "\nStep %d: %s\n%s", int(stage), stage, sg)
		}
	})
	if result.IsEmpty() {
		logger.Warn("grammar generates the empty language", "file", fileName)
	}

	if opts.steps && opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return writeGrammar(cmd, opts, result)
}

func showHandler(cmd *cobra.Command, opts *options, fileName string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	if e := checkFormat(opts.format); e != nil {
		return e
	}

	g, e := load(logger, fileName, opts.start)
	if e != nil {
		return e
	}

	return writeGrammar(cmd, opts, g)
}

func checkHandler(cmd *cobra.Command, opts *options, fileName string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	g, e := load(logger, fileName, opts.start)
	if e != nil {
		return e
	}

	e = g.CheckCNF()
	if e != nil {
		return fmt.Errorf("%s: %w", fileName, e)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: grammar is in Chomsky Normal Form\n", fileName)
	return nil
}

func writeGrammar(cmd *cobra.Command, opts *options, g *grammar.Grammar) error {
	content, e := render(g, opts)
	if e != nil {
		return e
	}

	if opts.output == "" {
		_, e = cmd.OutOrStdout().Write(content)
		return e
	}

	e = os.WriteFile(opts.output, content, 0o666)
	if e != nil {
		return fmt.Errorf("cannot write output: %w", e)
	}
	return nil
}

func exitCode(e error) int {
	var ce *cnf.Error
	if errors.As(e, &ce) && ce.Code == grammar.NotNormalFormError {
		return 1
	}
	return 3
}
