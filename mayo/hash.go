package mayo

import (
	"crypto/aes"
	"crypto/cipher"

	"golang.org/x/crypto/sha3"
)

// Shake256 is the extendable-output hash collaborator: a deterministic
// function of its inputs producing exactly outLen bytes, equivalent to
// SHAKE256(in_0 || in_1 || ... ).
func Shake256(outLen int, inputs ...[]byte) []byte {
	out := make([]byte, outLen)
	h := sha3.NewShake256()
	for _, in := range inputs {
		_, _ = h.Write(in)
	}
	_, _ = h.Read(out)
	return out
}

// AES128CTR is the seeded pseudorandom byte-stream collaborator: AES-128
// in counter mode with an all-zero IV/nonce, unauthenticated, producing
// exactly outLen bytes as a deterministic function of the 16-byte seed.
func AES128CTR(seed []byte, outLen int) ([]byte, error) {
	block, err := aes.NewCipher(seed)
	if err != nil {
		return nil, err
	}
	var nonce [aes.BlockSize]byte
	stream := cipher.NewCTR(block, nonce[:])
	out := make([]byte, outLen)
	stream.XORKeyStream(out, out)
	return out, nil
}
