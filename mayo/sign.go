package mayo

import (
	"crypto/rand"
	"io"

	"mayo-go/field"
)

// signRBytes is the length of the auxiliary randomness R folded into the
// salt derivation on every Sign call, so repeated signatures over the
// same message differ even under a fixed seed_sk.
const signRBytes = 32

const maxSignRetries = 256

// buildMi constructs M_i in F16^{m x o}: row a is v^T * L_a.
func buildMi(v []byte, l []*Matrix, m, o int) *Matrix {
	mi := NewMatrix(m, o)
	for a := 0; a < m; a++ {
		mi.SetRow(a, VecTimesMat(v, l[a]))
	}
	return mi
}

// signImpl produces a signature over msg using the expanded secret key
// esk, running the rejection loop of section 4.9 for up to 256 counter
// values. It fails with ErrSignRetryExhausted if none of them yield a
// full-rank linear system, and with ErrDecode if esk is malformed.
func signImpl(p *Params, esk []byte, msg []byte) ([]byte, error) {
	seedSk, o, p1, l, err := decodeExpandedSK(p, esk)
	if err != nil {
		return nil, err
	}

	mDigest := Shake256(p.DigestBytes, msg)

	r := make([]byte, signRBytes)
	if _, err := io.ReadFull(rand.Reader, r); err != nil {
		return nil, ErrRandomness
	}
	salt := Shake256(p.SaltBytes, mDigest, r, seedSk)

	t, err := DecodeVec(p.M, Shake256(ceilDiv(p.M, 2), mDigest, salt))
	if err != nil {
		return nil, err
	}

	vBytes := ceilDiv(p.V, 2)
	roBytes := ceilDiv(p.K*p.O, 2)

	for ctr := 0; ctr < maxSignRetries; ctr++ {
		vStream := Shake256(p.K*vBytes+roBytes, mDigest, salt, seedSk, []byte{byte(ctr)})

		vinegar := make([][]byte, p.K)
		for i := 0; i < p.K; i++ {
			vi, err := DecodeVec(p.V, vStream[i*vBytes:(i+1)*vBytes])
			if err != nil {
				return nil, err
			}
			vinegar[i] = vi
		}
		rVec, err := DecodeVec(p.K*p.O, vStream[p.K*vBytes:])
		if err != nil {
			return nil, err
		}

		mMats := make([]*Matrix, p.K)
		for i := 0; i < p.K; i++ {
			mMats[i] = buildMi(vinegar[i], l, p.M, p.O)
		}

		a := NewMatrix(p.M, p.K*p.O)
		y := make([]byte, p.M)
		copy(y, t)
		ell := 0

		for i := 0; i < p.K; i++ {
			for j := p.K - 1; j >= i; j-- {
				u := make([]byte, p.M)
				if i == j {
					for aa := 0; aa < p.M; aa++ {
						u[aa] = QuadForm(vinegar[i], p1[aa], vinegar[i])
					}
				} else {
					for aa := 0; aa < p.M; aa++ {
						u[aa] = field.Add(
							QuadForm(vinegar[i], p1[aa], vinegar[j]),
							QuadForm(vinegar[j], p1[aa], vinegar[i]),
						)
					}
				}

				e := p.EPow(ell)
				y = AddVecs(y, e.MulVec(u))

				a.AddBlock(0, i*p.O, e.Mul(mMats[j]))
				if i != j {
					a.AddBlock(0, j*p.O, e.Mul(mMats[i]))
				}
				ell++
			}
		}

		x, err := SampleSolution(a, y, rVec)
		if err == errRankDeficient {
			continue
		}
		if err != nil {
			return nil, err
		}

		s := make([]byte, p.K*p.N)
		for i := 0; i < p.K; i++ {
			xi := x[i*p.O : (i+1)*p.O]
			ox := o.MulVec(xi)
			si := make([]byte, p.N)
			copy(si, AddVecs(vinegar[i], ox))
			copy(si[p.V:], xi)
			copy(s[i*p.N:(i+1)*p.N], si)
		}

		sig := make([]byte, 0, p.SigBytes)
		sig = append(sig, EncodeVec(s)...)
		sig = append(sig, salt...)
		return sig, nil
	}

	return nil, ErrSignRetryExhausted
}
