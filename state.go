package rijndael

import (
	"github.com/codahale/rijndael/internal/gf256"
	"github.com/codahale/rijndael/internal/mem"
)

// A state is the 4x4 byte grid a block is transformed in. It is stored column-major, so the byte at row r and column
// c is s[r+4*c], which is also its offset in the block.
type state [BlockSize]byte

func subBytes(s *state) {
	for i := range s {
		s[i] = sbox[s[i]]
	}
}

// shiftRows rotates row r left by r columns.
func shiftRows(s *state) {
	t := *s
	for r := 1; r < 4; r++ {
		for c := range 4 {
			s[r+4*c] = t[r+4*((c+r)%4)]
		}
	}
}

// mixColumns multiplies each column by the circulant matrix
//
//	2 3 1 1
//	1 2 3 1
//	1 1 2 3
//	3 1 1 2
//
// over GF(2^8).
func mixColumns(s *state) {
	for c := range 4 {
		col := s[4*c : 4*c+4]
		a0, a1, a2, a3 := col[0], col[1], col[2], col[3]
		col[0] = gf256.Mul(a0, 2) ^ gf256.Mul(a1, 3) ^ a2 ^ a3
		col[1] = a0 ^ gf256.Mul(a1, 2) ^ gf256.Mul(a2, 3) ^ a3
		col[2] = a0 ^ a1 ^ gf256.Mul(a2, 2) ^ gf256.Mul(a3, 3)
		col[3] = gf256.Mul(a0, 3) ^ a1 ^ a2 ^ gf256.Mul(a3, 2)
	}
}

// addRoundKey XORs column c of the state with word 4*round+c of the schedule.
func addRoundKey(s *state, w *schedule, round int) {
	for c := range 4 {
		col := (*[4]byte)(s[4*c : 4*c+4])
		mem.XORWord(col, *col, w[4*round+c])
	}
}
