package mayo_test

import (
	"fmt"

	"mayo-go/mayo"
)

func Example() {
	cpk, csk, err := mayo.Keypair(mayo.MAYO1)
	if err != nil {
		panic(err)
	}

	msg := []byte("hello, mayo")
	sig, err := mayo.Sign(mayo.MAYO1, csk, msg)
	if err != nil {
		panic(err)
	}

	ok := mayo.Verify(mayo.MAYO1, cpk, msg, sig)
	fmt.Println(ok)
	// Output: true
}

func ExampleSignOpen() {
	cpk, csk, err := mayo.Keypair(mayo.MAYO2)
	if err != nil {
		panic(err)
	}

	msg := []byte("embedded message")
	sig, err := mayo.Sign(mayo.MAYO2, csk, msg)
	if err != nil {
		panic(err)
	}

	opened, ok := mayo.SignOpen(mayo.MAYO2, cpk, append(sig, msg...))
	fmt.Println(ok, string(opened))
	// Output: true embedded message
}
