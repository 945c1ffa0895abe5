package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps byte offsets of a text to lines and columns.
type PosDoc struct {
	d string
	n []int
}

// NewPosDoc indexes the newlines of d.
func NewPosDoc(d string) *PosDoc {
	p := &PosDoc{d: d}
	for i := 0; i < len(d); i++ {
		if d[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// LineCol returns the 0 based line and column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

// Pos is an offset in a PosDoc.
type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line()+1, p.Col()+1)
}
