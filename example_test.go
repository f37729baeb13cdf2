package rijndael_test

import (
	"fmt"

	"github.com/codahale/rijndael"
)

func Example() {
	c, err := rijndael.New([]byte("Thats my Kung Fu"))
	if err != nil {
		panic(err)
	}

	ciphertext, err := c.EncryptBlock(nil, []byte("Two One Nine Two"))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%x\n", ciphertext)

	// Output:
	// 29c3505f571420f6402299b31a02d73a
}

func ExampleCipher_RoundKey() {
	c, err := rijndael.New([]byte("Thats my Kung Fu"))
	if err != nil {
		panic(err)
	}

	for _, round := range []int{0, 1, rijndael.Rounds} {
		fmt.Printf("%d %x\n", round, c.RoundKey(round))
	}

	// Output:
	// 0 5468617473206d79204b756e67204675
	// 1 e232fcf191129188b159e4e6d679a293
	// 10 28fddef86da4244accc0a4fe3b316f26
}
