// Package source defines named source text with line and column lookup.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source is an immutable named text. Lines and columns are 1-based, columns count runes.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates a source. content is not copied and must not be changed afterwards.
func New(name string, content []byte) *Source {
	lineStarts := make([]int, 1, bytes.Count(content, []byte("\n"))+1)
	for i, c := range content {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{name: name, content: content, lineStarts: lineStarts}
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to line and column. Offsets out of range are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos converts line and column to byte offset. Columns are counted in bytes here,
// positions beyond the end of line or source are clamped.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	res := s.lineStarts[line-1] + col - 1
	if res > l {
		return l
	}
	return res
}

// Pos is a position in a source. It implements cnf.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

func (p Pos) Offset() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
