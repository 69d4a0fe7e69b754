package mayo

import (
	"crypto/subtle"

	"mayo-go/field"
)

// buildBlock assembles the n x n block matrix [[P1_a, P2_a], [0, P3_a]]
// used to evaluate the public map on a full n-length vector.
func buildBlock(p *Params, p1a, p2a, p3a *Matrix) *Matrix {
	out := NewMatrix(p.N, p.N)
	out.SetBlock(0, 0, p1a)
	out.SetBlock(0, p.V, p2a)
	out.SetBlock(p.V, p.V, p3a)
	return out
}

// verifyImpl checks sig against msg under the expanded public key epk,
// returning false (never an error) on any malformed input.
func verifyImpl(p *Params, epk []byte, msg []byte, sig []byte) bool {
	if len(sig) != p.SigBytes {
		return false
	}
	p1, p2, p3, err := decodeExpandedPK(p, epk)
	if err != nil {
		return false
	}

	sLen := ceilDiv(p.K*p.N, 2)
	sEnc := sig[:sLen]
	salt := sig[sLen:]

	s, err := DecodeVec(p.K*p.N, sEnc)
	if err != nil {
		return false
	}
	parts := make([][]byte, p.K)
	for i := 0; i < p.K; i++ {
		parts[i] = s[i*p.N : (i+1)*p.N]
	}

	mDigest := Shake256(p.DigestBytes, msg)
	t, err := DecodeVec(p.M, Shake256(ceilDiv(p.M, 2), mDigest, salt))
	if err != nil {
		return false
	}

	blocks := make([]*Matrix, p.M)
	for a := 0; a < p.M; a++ {
		blocks[a] = buildBlock(p, p1[a], p2[a], p3[a])
	}

	y := make([]byte, p.M)
	ell := 0
	for i := 0; i < p.K; i++ {
		for j := p.K - 1; j >= i; j-- {
			u := make([]byte, p.M)
			if i == j {
				for a := 0; a < p.M; a++ {
					u[a] = QuadForm(parts[i], blocks[a], parts[i])
				}
			} else {
				for a := 0; a < p.M; a++ {
					u[a] = field.Add(
						QuadForm(parts[i], blocks[a], parts[j]),
						QuadForm(parts[j], blocks[a], parts[i]),
					)
				}
			}
			y = AddVecs(y, p.EPow(ell).MulVec(u))
			ell++
		}
	}

	return subtle.ConstantTimeCompare(y, t) == 1
}
