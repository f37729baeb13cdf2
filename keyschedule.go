package rijndael

import "github.com/codahale/rijndael/internal/mem"

// A word is a four-byte column of a round key.
type word [4]byte

// A schedule is the full expanded key: Rounds+1 round keys of four words each.
type schedule [4 * (Rounds + 1)]word

// expandKey derives the key schedule from key. The first four words are the key itself.
func expandKey(key *[KeySize]byte) schedule {
	var w schedule
	for i := range 4 {
		w[i] = word(key[4*i : 4*i+4])
	}

	for i := 4; i < len(w); i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/4]
		}
		mem.XORWord((*[4]byte)(&w[i]), temp, w[i-4])
	}
	return w
}

// rotWord rotates w left by one byte.
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord applies the S-box to each byte of w.
func subWord(w word) word {
	return word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}
