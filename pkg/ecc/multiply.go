package ecc

import (
	"math/big"
)

const (
	nafWindowBits = 4
	nafWindowHigh = 1 << nafWindowBits       // 16
	nafWindowLow  = 1 << (nafWindowBits - 1) // 8
	nafWindowMask = nafWindowHigh - 1

	// 1P, 3P, 5P, 7P
	nafTableSize = nafWindowLow / 2
)

// nafTable holds the odd multiples of a point used by Multiply, together with
// their negatives. pos[i] is (2i+1)P and neg[i] is -(2i+1)P.
type nafTable struct {
	pos [nafTableSize]*Point
	neg [nafTableSize]*Point
}

func newNAFTable(p *Point) *nafTable {
	t := &nafTable{}
	twice := p.Double()
	t.pos[0] = p.Copy()
	for i := 1; i < nafTableSize; i++ {
		t.pos[i] = t.pos[i-1].Add(twice)
	}
	for i := range t.pos {
		t.neg[i] = t.pos[i].Neg()
	}
	return t
}

// lookup returns dP for an odd digit d with |d| < 2^(w-1).
func (t *nafTable) lookup(d int) *Point {
	if d < 0 {
		return t.neg[(-d-1)/2]
	}
	return t.pos[(d-1)/2]
}

// multiples returns the table for p, building it on first use.
func (p *Point) multiples() *nafTable {
	p.tableOnce.Do(func() {
		p.table = newNAFTable(p)
	})
	return p.table
}

// recodeNAF returns the width-4 non-adjacent form of k, most significant
// digit first. Every digit is 0 or odd in [-7, 7], and any window of four
// consecutive digits holds at most one non-zero digit.
func recodeNAF(k *big.Int) []int {
	rem := new(big.Int).Set(k)
	window := new(big.Int)
	mask := big.NewInt(nafWindowMask)

	naf := make([]int, 0, k.BitLen()+1)
	for rem.Sign() > 0 {
		digit := 0
		if rem.Bit(0) == 1 {
			digit = int(window.And(rem, mask).Int64())
			if digit >= nafWindowLow {
				digit -= nafWindowHigh
			}
			rem.Sub(rem, big.NewInt(int64(digit)))
		}
		naf = append(naf, digit)
		rem.Rsh(rem, 1)
	}

	for i, j := 0, len(naf)-1; i < j; i, j = i+1, j-1 {
		naf[i], naf[j] = naf[j], naf[i]
	}
	return naf
}

// Multiply returns k·p for a non-negative scalar k.
//
// The scalar is recoded in width-4 NAF and processed with a table of odd
// multiples of p that is computed once per Point. The running time depends
// on k.
func (p *Point) Multiply(k *big.Int) (*Point, error) {
	if k == nil || k.Sign() < 0 {
		return nil, opErrorf("Multiply", ErrInvalidScalar, "scalar must be non-negative")
	}
	if k.Sign() == 0 || p.inf {
		return Infinity(), nil
	}
	if k.IsInt64() && k.Int64() == 1 {
		return p.Copy(), nil
	}

	table := p.multiples()
	result := Infinity()
	for _, d := range recodeNAF(k) {
		result = result.Double()
		if d != 0 {
			result = result.Add(table.lookup(d))
		}
	}
	return result, nil
}
