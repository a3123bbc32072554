package grammar

import (
	"github.com/ava12/cnf/internal/names"
)

// Stage identifies a normalization stage.
type Stage int

const (
	StartStage Stage = iota + 1
	EpsilonStage
	UnitStage
	UselessStage
	TerminalStage
	BinarizeStage
)

var stageNames = map[Stage]string{
	StartStage:    "start symbol isolation",
	EpsilonStage:  "epsilon production elimination",
	UnitStage:     "unit production elimination",
	UselessStage:  "useless symbol elimination",
	TerminalStage: "terminal isolation",
	BinarizeStage: "binarization",
}

func (s Stage) String() string {
	name, has := stageNames[s]
	if !has {
		return "unknown stage"
	}
	return name
}

// Stages lists normalization stages in execution order.
var Stages = []Stage{StartStage, EpsilonStage, UnitStage, UselessStage, TerminalStage, BinarizeStage}

// Observer is called after every normalization stage with the grammar produced by that stage.
// Observer must not retain g beyond its own needs; g is never modified afterwards anyway.
type Observer func(stage Stage, g *Grammar)

type stageFunc func(g *Grammar, alloc *names.Allocator) *Grammar

var stageFuncs = map[Stage]stageFunc{
	StartStage:    isolateStart,
	EpsilonStage:  eliminateEpsilon,
	UnitStage:     eliminateUnits,
	UselessStage:  eliminateUseless,
	TerminalStage: isolateTerminals,
	BinarizeStage: binarize,
}

// ToChomskyNormalForm returns an equivalent grammar in Chomsky Normal Form.
// Every production body of the result is either a single terminal or exactly two non-terminals;
// the start symbol additionally has the empty-string production if and only if
// g generates the empty string. The start symbol never appears in production bodies of the result
// when it has the empty-string production. g itself is not changed.
func (g *Grammar) ToChomskyNormalForm() *Grammar {
	return g.Normalize(nil)
}

// Normalize works like ToChomskyNormalForm, additionally calling observer (if not nil) after every stage.
func (g *Grammar) Normalize(observer Observer) *Grammar {
	alloc := names.New(g.names()...)
	result := g
	for _, stage := range Stages {
		result = stageFuncs[stage](result, alloc)
		if observer != nil {
			observer(stage, result)
		}
	}
	return result
}

// Apply runs a single normalization stage and returns its result.
// Fresh names are chosen to avoid every name declared in g.
func (g *Grammar) Apply(stage Stage) *Grammar {
	f, has := stageFuncs[stage]
	if !has {
		return g
	}
	return f(g, names.New(g.names()...))
}
