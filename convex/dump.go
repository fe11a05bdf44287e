// SPDX-License-Identifier: MIT

// Package convex: human-readable dumps for debugging.
//
// Layout (one field per line, absent fields shown as "?"):
//
//	<Assembler>
//	[AE] = [1, 1]
//	[BE] = [2]
//	...
//	</Assembler>
//
// Matrices print one bracketed row per line; column vectors print as a
// single bracketed row.

package convex

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/convexprep/matrix"
)

const absent = "?"

// String dumps every block of the assembler.
func (a *Assembler) String() string {
	var b strings.Builder
	b.WriteString("<Assembler>")
	writeMatrix(&b, "AE", a.ae)
	writeColumn(&b, "BE", a.be)
	writeMatrix(&b, "Q", a.q)
	writeColumn(&b, "C", a.c)
	writeMatrix(&b, "AI", a.ai)
	writeColumn(&b, "BI", a.bi)
	if a.kick != nil {
		writeVector(&b, "KS", a.kick)
	}
	b.WriteString("\n</Assembler>")

	return b.String()
}

// String dumps the problem blocks, the solution vectors and both slacks.
// Dumping allocates X, LE and LI if they were not yet allocated. LE and LI
// print as absent when the matching constraint block is.
func (s *Solution) String() string {
	p := s.problem
	var b strings.Builder
	b.WriteString("<Solution>")
	writeMatrix(&b, "AE", p.ae)
	writeColumn(&b, "BE", p.be)
	writeMatrix(&b, "Q", p.q)
	writeColumn(&b, "C", p.c)
	writeMatrix(&b, "AI", p.ai)
	writeColumn(&b, "BI", p.bi)
	writeVector(&b, "X", s.X())
	writeVector(&b, "LE", multipliers(p.HasEqualities(), s.LE))
	writeVector(&b, "LI", multipliers(p.HasInequalities(), s.LI))
	se, err := s.SlackEqualities()
	if err != nil {
		se = nil
	}
	writeVector(&b, "SE", se)
	si, err := s.SlackInequalities()
	if err != nil {
		si = nil
	}
	writeVector(&b, "SI", si)
	b.WriteString("\n</Solution>")

	return b.String()
}

// multipliers returns get() when the block exists, nil (printed "?") otherwise.
func multipliers(present bool, get func() []float64) []float64 {
	if !present {
		return nil
	}

	return get()
}

func writeLabel(b *strings.Builder, name string) {
	b.WriteString("\n[")
	b.WriteString(name)
	b.WriteString("] = ")
}

func writeMatrix(b *strings.Builder, name string, m *matrix.Dense) {
	writeLabel(b, name)
	if m == nil {
		b.WriteString(absent)

		return
	}
	b.WriteString(strings.TrimSuffix(m.String(), "\n"))
}

func writeColumn(b *strings.Builder, name string, m *matrix.Dense) {
	if m == nil {
		writeVector(b, name, nil)

		return
	}
	v, err := matrix.ColumnValues(m)
	if err != nil {
		writeMatrix(b, name, m)

		return
	}
	writeVector(b, name, v)
}

// writeVector prints v as [a, b, c]; a nil v prints as absent.
func writeVector(b *strings.Builder, name string, v []float64) {
	writeLabel(b, name)
	if v == nil {
		b.WriteString(absent)

		return
	}
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')
}
