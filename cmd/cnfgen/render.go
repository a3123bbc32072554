package main

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/slices"

	"github.com/ava12/cnf/grammar"
	"github.com/ava12/cnf/langdef"
)

const (
	textFormat  = "text"
	yamlFormat  = "yaml"
	jsonFormat  = "json"
	tableFormat = "table"
	goFormat    = "go"
)

var outputFormats = []string{textFormat, yamlFormat, jsonFormat, tableFormat, goFormat}

var identRe = regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")

func checkFormat(name string) error {
	if !slices.Contains(outputFormats, name) {
		return fmt.Errorf("unknown output format %q", name)
	}
	return nil
}

func render(g *grammar.Grammar, opts *options) ([]byte, error) {
	switch opts.format {
	case yamlFormat:
		return langdef.MarshalYAML(g)
	case jsonFormat:
		return langdef.MarshalJSON(g)
	case tableFormat:
		return makeTable(g), nil
	case goFormat:
		return makeGo(g, opts)
	default:
		return []byte(g.String()), nil
	}
}

func makeTable(g *grammar.Grammar) []byte {
	var data [][]string
	for i, r := range g.Rules() {
		data = append(data, []string{strconv.Itoa(i + 1), r.Head, r.Body.String()})
	}

	var buffer bytes.Buffer
	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"#", "HEAD", "BODY"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("  ")
	table.AppendBulk(data)
	table.Render()
	return buffer.Bytes()
}

func makeGo(g *grammar.Grammar, opts *options) ([]byte, error) {
	packageName := opts.packageName
	if packageName == "" {
		outFileName := opts.output
		if outFileName == "" {
			outFileName = "grammar.go"
		}
		dir, e := filepath.Abs(outFileName)
		if e != nil {
			return nil, e
		}

		packageName = filepath.Base(filepath.Dir(dir))
	}
	varName := opts.varName
	if varName == "" {
		varName = g.Start()
	}

	if !identRe.MatchString(packageName) {
		return nil, fmt.Errorf("invalid package name: %s", packageName)
	}
	if !identRe.MatchString(varName) {
		return nil, fmt.Errorf("invalid variable name: %s", varName)
	}

	d := langdef.Definition(g)
	var buffer bytes.Buffer

	buffer.WriteString("// Code generated with cnfgen. DO NOT EDIT.\n\n" +
		"package " + packageName + "\n\n" +
		"import \"github.com/ava12/cnf/grammar\"\n\n" +
		"var " + varName + " = grammar.Definition{\n")

	buffer.WriteString(fmt.Sprintf("NonTerminals: %#v,\n", d.NonTerminals))
	buffer.WriteString(fmt.Sprintf("Terminals: %#v,\n", d.Terminals))
	buffer.WriteString(fmt.Sprintf("Start: %q,\n", d.Start))
	buffer.WriteString("Productions: map[string][]string{\n")
	for _, nt := range d.NonTerminals {
		bodies, has := d.Productions[nt]
		if has {
			buffer.WriteString(fmt.Sprintf("%q: %#v,\n", nt, bodies))
		}
	}
	buffer.WriteString("},\n}\n")

	return format.Source(buffer.Bytes())
}
