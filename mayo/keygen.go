package mayo

import (
	"crypto/rand"
	"io"
)

func encodeMatrixFlat(m *Matrix) []byte {
	flat := make([]byte, m.Rows*m.Cols)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			flat[i*m.Cols+j] = m.At(i, j)
		}
	}
	return EncodeVec(flat)
}

func decodeMatrixFlat(rows, cols int, data []byte) (*Matrix, error) {
	flat, err := DecodeVec(rows*cols, data)
	if err != nil {
		return nil, err
	}
	out := NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, flat[i*cols+j])
		}
	}
	return out, nil
}

// deriveOP1P2 recomputes seed_pk, O and {P(1)_i}, {P(2)_i} from seed_sk,
// the common first step of both CompactKeyGen and ExpandSK.
func deriveOP1P2(p *Params, seedSk []byte) (seedPk []byte, o *Matrix, p1, p2 []*Matrix, err error) {
	s := Shake256(p.PkSeedBytes+p.OBytes, seedSk)
	seedPk = s[:p.PkSeedBytes]

	o, err = decodeMatrixFlat(p.V, p.O, s[p.PkSeedBytes:p.PkSeedBytes+p.OBytes])
	if err != nil {
		return nil, nil, nil, nil, err
	}

	stream, err := AES128CTR(seedPk, p.P1Bytes+p.P2Bytes)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	p1, err = DecodeP1(p, stream[:p.P1Bytes])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	p2, err = DecodeP2(p, stream[p.P1Bytes:p.P1Bytes+p.P2Bytes])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return seedPk, o, p1, p2, nil
}

func computeP3(o *Matrix, p1, p2 []*Matrix) []*Matrix {
	oT := o.Transpose()
	p3 := make([]*Matrix, len(p1))
	for i := range p1 {
		term := oT.Mul(p1[i]).Mul(o).Add(oT.Mul(p2[i]))
		p3[i] = Upper(term)
	}
	return p3
}

func computeL(o *Matrix, p1, p2 []*Matrix) []*Matrix {
	l := make([]*Matrix, len(p1))
	for i := range p1 {
		sym := p1[i].Add(p1[i].Transpose())
		l[i] = sym.Mul(o).Add(p2[i])
	}
	return l
}

// CompactKeyGen samples a fresh seed_sk and derives the compact public
// and secret keys: cpk = seed_pk || encode(P(3)), csk = seed_sk.
func CompactKeyGen(p *Params) (cpk, csk []byte, err error) {
	seedSk := make([]byte, p.SkSeedBytes)
	if _, err := io.ReadFull(rand.Reader, seedSk); err != nil {
		return nil, nil, ErrRandomness
	}

	seedPk, o, p1, p2, err := deriveOP1P2(p, seedSk)
	if err != nil {
		return nil, nil, err
	}
	p3 := computeP3(o, p1, p2)

	cpk = make([]byte, 0, p.CpkBytes)
	cpk = append(cpk, seedPk...)
	cpk = append(cpk, EncodeP3(p, p3)...)

	csk = seedSk
	return cpk, csk, nil
}

// ExpandSK recomputes O, {P(1)_i}, {P(2)_i} from seed_sk, derives
// {L_i} = (P(1)_i+P(1)_i^T)O + P(2)_i, and returns
// esk = seed_sk || encode(O) || encode(P(1)) || encode(L).
func ExpandSK(p *Params, csk []byte) ([]byte, error) {
	if len(csk) != p.CskBytes {
		return nil, ErrDecode
	}
	seedSk := csk

	_, o, p1, p2, err := deriveOP1P2(p, seedSk)
	if err != nil {
		return nil, err
	}
	l := computeL(o, p1, p2)

	esk := make([]byte, 0, p.EskBytes)
	esk = append(esk, seedSk...)
	esk = append(esk, encodeMatrixFlat(o)...)
	esk = append(esk, EncodeP1(p, p1)...)
	esk = append(esk, EncodeL(p, l)...)
	return esk, nil
}

// ExpandPK reconstitutes epk = encode(P(1)) || encode(P(2)) || encode(P(3))
// from cpk = seed_pk || encode(P(3)); the first two blocks are the raw
// AES-CTR stream keyed by seed_pk and need no decode/re-encode round trip.
func ExpandPK(p *Params, cpk []byte) ([]byte, error) {
	if len(cpk) != p.CpkBytes {
		return nil, ErrDecode
	}
	seedPk := cpk[:p.PkSeedBytes]
	p3Bytes := cpk[p.PkSeedBytes:]

	stream, err := AES128CTR(seedPk, p.P1Bytes+p.P2Bytes)
	if err != nil {
		return nil, err
	}

	epk := make([]byte, 0, p.EpkBytes)
	epk = append(epk, stream...)
	epk = append(epk, p3Bytes...)
	return epk, nil
}

func decodeExpandedSK(p *Params, esk []byte) (seedSk []byte, o *Matrix, p1, l []*Matrix, err error) {
	if len(esk) != p.EskBytes {
		return nil, nil, nil, nil, ErrDecode
	}
	off := 0
	seedSk = esk[off : off+p.SkSeedBytes]
	off += p.SkSeedBytes

	o, err = decodeMatrixFlat(p.V, p.O, esk[off:off+p.OBytes])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	off += p.OBytes

	p1, err = DecodeP1(p, esk[off:off+p.P1Bytes])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	off += p.P1Bytes

	l, err = DecodeL(p, esk[off:off+p.LBytes])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	off += p.LBytes

	return seedSk, o, p1, l, nil
}

func decodeExpandedPK(p *Params, epk []byte) (p1, p2, p3 []*Matrix, err error) {
	if len(epk) != p.EpkBytes {
		return nil, nil, nil, ErrDecode
	}
	off := 0
	p1, err = DecodeP1(p, epk[off:off+p.P1Bytes])
	if err != nil {
		return nil, nil, nil, err
	}
	off += p.P1Bytes

	p2, err = DecodeP2(p, epk[off:off+p.P2Bytes])
	if err != nil {
		return nil, nil, nil, err
	}
	off += p.P2Bytes

	p3, err = DecodeP3(p, epk[off:off+p.P3Bytes])
	if err != nil {
		return nil, nil, nil, err
	}
	off += p.P3Bytes

	return p1, p2, p3, nil
}
