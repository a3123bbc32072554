package langdef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/cnf"
	"github.com/ava12/cnf/grammar"
)

func parseEBNF(t *testing.T, src, start string) *grammar.Grammar {
	t.Helper()
	g, e := ParseEBNF("test.ebnf", strings.NewReader(src), start)
	require.NoError(t, e)
	return g
}

func TestEbnfFlattening(t *testing.T) {
	g := parseEBNF(t, `
		Expr = Term { ( "+" | "-" ) Term } .
		Term = "x" | "(" Expr ")" .
	`, "")

	assert.Equal(t, "Expr", g.Start())
	assert.Equal(t, []string{"Expr", "Expr_grp1", "Expr_rep1", "Term"}, g.NonTerminals())
	assert.Equal(t, []string{"+", "-", "x", "(", ")"}, g.Terminals())
	assert.Equal(t, []string{"Term Expr_rep1"}, bodyTexts(g, "Expr"))
	assert.Equal(t, []string{"+", "-"}, bodyTexts(g, "Expr_grp1"))
	assert.Equal(t, []string{"Expr_grp1 Term Expr_rep1", "ε"}, bodyTexts(g, "Expr_rep1"))
	assert.Equal(t, []string{"x", "( Expr )"}, bodyTexts(g, "Term"))
}

func TestEbnfStartProduction(t *testing.T) {
	src := `
		List = Item { "," Item } .
		Item = "a" | "[" [ List ] "]" .
	`
	g := parseEBNF(t, src, "Item")
	assert.Equal(t, "Item", g.Start())
	assert.Equal(t, []string{"Item", "Item_opt1", "List", "List_rep1"}, g.NonTerminals())
	assert.Equal(t, []string{"a", "[ Item_opt1 ]"}, bodyTexts(g, "Item"))
	assert.Equal(t, []string{"List", "ε"}, bodyTexts(g, "Item_opt1"))
	assert.Equal(t, []string{", Item List_rep1", "ε"}, bodyTexts(g, "List_rep1"))
}

func TestEbnfRange(t *testing.T) {
	g := parseEBNF(t, `
		Num = digit { digit } .
		digit = "0" … "2" .
	`, "Num")

	assert.Equal(t, []string{"Num", "Num_rep1", "digit", "digit_rng1"}, g.NonTerminals())
	assert.Equal(t, []string{"0", "1", "2"}, g.Terminals())
	assert.Equal(t, []string{"digit_rng1"}, bodyTexts(g, "digit"))
	assert.Equal(t, []string{"0", "1", "2"}, bodyTexts(g, "digit_rng1"))
}

func TestEbnfHelperNamesAvoidProductions(t *testing.T) {
	g := parseEBNF(t, `
		Expr = [ "a" ] Expr_opt1 .
		Expr_opt1 = "b" .
	`, "")

	assert.Equal(t, []string{"Expr", "Expr_opt2", "Expr_opt1"}, g.NonTerminals())
	assert.Equal(t, []string{"Expr_opt2 Expr_opt1"}, bodyTexts(g, "Expr"))
	assert.Equal(t, []string{"a", "ε"}, bodyTexts(g, "Expr_opt2"))
}

func TestEbnfEmptyProduction(t *testing.T) {
	g := parseEBNF(t, `
		S = "a" S "b" | Empty .
		Empty = .
	`, "")
	assert.Equal(t, []string{"S", "Empty"}, g.NonTerminals())
	assert.Equal(t, []string{"a S b", "Empty"}, bodyTexts(g, "S"))
	assert.Equal(t, []string{"ε"}, bodyTexts(g, "Empty"))
}

func TestEbnfErrors(t *testing.T) {
	samples := []struct {
		src, start string
		code       int
	}{
		{`S = "a"`, "", EbnfError},
		{`S = "a" .`, "X", EbnfError},
		{`S = A .`, "", EbnfError},
		{`S = "a" . T = "b" .`, "S", EbnfError},
		{`S = "9" … "0" .`, "", EbnfError},
		{``, "", EbnfError},
		{`S = "ab" … "c" .`, "", EbnfError},
		{`S = "a" … "\u0400" .`, "", RangeError},
	}

	for i, sample := range samples {
		_, e := ParseEBNF("test.ebnf", strings.NewReader(sample.src), sample.start)
		require.Error(t, e, "sample #%d", i)

		ce, is := e.(*cnf.Error)
		require.True(t, is, "sample #%d: %s", i, e)
		assert.Equal(t, sample.code, ce.Code, "sample #%d: %s", i, e)
	}
}

func TestEbnfConvert(t *testing.T) {
	g := parseEBNF(t, `
		Expr = Term { ( "+" | "-" ) Term } .
		Term = "x" | "(" Expr ")" .
	`, "")

	result := g.ToChomskyNormalForm()
	require.NoError(t, result.Check())
	require.NoError(t, result.CheckCNF())
}
