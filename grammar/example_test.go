package grammar_test

import (
	"fmt"

	"github.com/ava12/cnf/grammar"
)

func Example() {
	g, e := grammar.New(grammar.Definition{
		NonTerminals: []string{"S"},
		Terminals:    []string{"a", "b"},
		Start:        "S",
		Productions:  map[string][]string{"S": {"aSb", "ε"}},
	})
	if e != nil {
		fmt.Println(e)
		return
	}

	fmt.Print(g.ToChomskyNormalForm())
	// Output:
	// Grammar {
	//   VN = {S0, S, T1, T2, V1, V2}
	//   VT = {a, b}
	//   S = S0
	//   P = {
	//     S0 → ε | T1 V1 | T1 T2
	//     S → T1 V2 | T1 T2
	//     T1 → a
	//     T2 → b
	//     V1 → S T2
	//     V2 → S T2
	//   }
	// }
}

func ExampleGrammar_Normalize() {
	g, _ := grammar.New(grammar.Definition{
		NonTerminals: []string{"S", "A"},
		Terminals:    []string{"a"},
		Start:        "S",
		Productions:  map[string][]string{"S": {"A"}, "A": {"aA", "a"}},
	})

	g.Normalize(func(stage grammar.Stage, g *grammar.Grammar) {
		fmt.Printf("%s: %d rules\n", stage, g.RuleCount())
	})
	// Output:
	// start symbol isolation: 3 rules
	// epsilon production elimination: 3 rules
	// unit production elimination: 4 rules
	// useless symbol elimination: 4 rules
	// terminal isolation: 5 rules
	// binarization: 5 rules
}
