package langdef

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ava12/cnf/grammar"
)

// ParseYAML decodes grammar.Definition document and returns a grammar on success.
// Unknown document keys are not allowed.
// Returns nil and cnf.Error on error.
func ParseYAML(name string, content []byte) (*grammar.Grammar, error) {
	var d grammar.Definition
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	e := dec.Decode(&d)
	if errors.Is(e, io.EOF) {
		e = errors.New("empty document")
	}
	if e != nil {
		return nil, decodeError(name, e)
	}

	return grammar.New(d)
}

// ParseJSON decodes grammar.Definition document and returns a grammar on success.
// Unknown document keys are not allowed.
// Returns nil and cnf.Error on error.
func ParseJSON(name string, content []byte) (*grammar.Grammar, error) {
	var d grammar.Definition
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	e := dec.Decode(&d)
	if errors.Is(e, io.EOF) {
		e = errors.New("empty document")
	}
	if e != nil {
		return nil, decodeError(name, e)
	}

	return grammar.New(d)
}

// Definition returns grammar description suitable for grammar.New.
// Production bodies are written as space-separated symbol names.
func Definition(g *grammar.Grammar) grammar.Definition {
	d := grammar.Definition{
		NonTerminals: g.NonTerminals(),
		Terminals:    g.Terminals(),
		Start:        g.Start(),
		Productions:  make(map[string][]string),
	}
	for _, r := range g.Rules() {
		d.Productions[r.Head] = append(d.Productions[r.Head], r.Body.String())
	}
	return d
}

type productionList struct {
	order  []string
	bodies map[string][]string
}

// MarshalYAML keeps productions in non-terminal declaration order.
func (pl productionList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, nt := range pl.order {
		bodies, has := pl.bodies[nt]
		if !has {
			continue
		}

		var value yaml.Node
		e := value.Encode(bodies)
		if e != nil {
			return nil, e
		}

		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: nt}
		node.Content = append(node.Content, key, &value)
	}
	return node, nil
}

type yamlDocument struct {
	NonTerminals []string       `yaml:"nonterminals"`
	Terminals    []string       `yaml:"terminals"`
	Start        string         `yaml:"start"`
	Productions  productionList `yaml:"productions"`
}

// MarshalYAML writes grammar as YAML grammar.Definition document.
func MarshalYAML(g *grammar.Grammar) ([]byte, error) {
	d := Definition(g)
	doc := yamlDocument{
		NonTerminals: d.NonTerminals,
		Terminals:    d.Terminals,
		Start:        d.Start,
		Productions:  productionList{d.NonTerminals, d.Productions},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	e := enc.Encode(doc)
	if e == nil {
		e = enc.Close()
	}
	if e != nil {
		return nil, e
	}

	return buf.Bytes(), nil
}

// MarshalJSON writes grammar as indented JSON grammar.Definition document.
func MarshalJSON(g *grammar.Grammar) ([]byte, error) {
	data, e := json.MarshalIndent(Definition(g), "", "  ")
	if e != nil {
		return nil, e
	}

	return append(data, '\n'), nil
}

// Format denotes grammar description format.
type Format int

const (
	UnknownFormat Format = iota
	TextFormat
	EbnfFormat
	YamlFormat
	JsonFormat
)

var formatNames = map[Format]string{
	UnknownFormat: "unknown",
	TextFormat:    "text",
	EbnfFormat:    "ebnf",
	YamlFormat:    "yaml",
	JsonFormat:    "json",
}

func (f Format) String() string {
	return formatNames[f]
}

var extFormats = map[string]Format{
	".bnf":  TextFormat,
	".txt":  TextFormat,
	".ebnf": EbnfFormat,
	".yaml": YamlFormat,
	".yml":  YamlFormat,
	".json": JsonFormat,
}

// FormatOf detects description format using file name extension.
func FormatOf(fileName string) Format {
	return extFormats[strings.ToLower(filepath.Ext(fileName))]
}

// Load parses description of given format.
// start is the EBNF start production name, it is ignored for other formats.
func Load(name string, content []byte, format Format, start string) (*grammar.Grammar, error) {
	switch format {
	case TextFormat:
		return ParseBytes(name, content)
	case EbnfFormat:
		return ParseEBNF(name, bytes.NewReader(content), start)
	case YamlFormat:
		return ParseYAML(name, content)
	case JsonFormat:
		return ParseJSON(name, content)
	default:
		return nil, unknownFormatError(name)
	}
}

// LoadFile reads description file, its format is detected using file name extension.
// start is the EBNF start production name, it is ignored for other formats.
func LoadFile(fileName, start string) (*grammar.Grammar, error) {
	format := FormatOf(fileName)
	if format == UnknownFormat {
		return nil, unknownFormatError(fileName)
	}

	content, e := os.ReadFile(fileName)
	if e != nil {
		return nil, e
	}

	return Load(fileName, content, format, start)
}
