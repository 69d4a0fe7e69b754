// Package mayo implements the core of the MAYO post-quantum signature
// scheme: F16 arithmetic, bit-sliced matrix encodings, the linear-algebra
// kernel, and the key-generation, signing and verification algorithms for
// the MAYO-1, MAYO-2, MAYO-3 and MAYO-5 parameter sets.
//
// Command-line or browser front-ends, key file I/O, benchmarking
// harnesses and host-language bindings are not part of this package;
// callers wanting those build them on top of the API below.
package mayo

// Keypair generates a fresh compact keypair for the given variant.
func Keypair(v Variant) (cpk, csk []byte, err error) {
	p := NewParams(v)
	return CompactKeyGen(p)
}

// Sign expands csk and signs msg, returning sig‖salt as described in
// section 4.9.
func Sign(v Variant, csk []byte, msg []byte) ([]byte, error) {
	p := NewParams(v)
	esk, err := ExpandSK(p, csk)
	if err != nil {
		return nil, err
	}
	return signImpl(p, esk, msg)
}

// Verify reports whether sig is a valid signature over msg under cpk.
func Verify(v Variant, cpk []byte, msg []byte, sig []byte) bool {
	p := NewParams(v)
	epk, err := ExpandPK(p, cpk)
	if err != nil {
		return false
	}
	return verifyImpl(p, epk, msg, sig)
}

// SignOpen verifies sigAndMsg (sig of length SigBytes followed by the
// message) under cpk and, if valid, returns the embedded message and
// true; otherwise it returns nil, false.
func SignOpen(v Variant, cpk []byte, sigAndMsg []byte) ([]byte, bool) {
	p := NewParams(v)
	if len(sigAndMsg) < p.SigBytes {
		return nil, false
	}
	sig := sigAndMsg[:p.SigBytes]
	msg := sigAndMsg[p.SigBytes:]
	if !Verify(v, cpk, msg, sig) {
		return nil, false
	}
	return msg, true
}
