package mayo

import "testing"

func BenchmarkCompactKeyGen(b *testing.B) {
	p := NewParams(MAYO1)
	for i := 0; i < b.N; i++ {
		if _, _, err := CompactKeyGen(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	p := NewParams(MAYO1)
	_, csk, err := CompactKeyGen(p)
	if err != nil {
		b.Fatal(err)
	}
	esk, err := ExpandSK(p, csk)
	if err != nil {
		b.Fatal(err)
	}
	msg := []byte("benchmark message")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := signImpl(p, esk, msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	p := NewParams(MAYO1)
	cpk, csk, err := CompactKeyGen(p)
	if err != nil {
		b.Fatal(err)
	}
	esk, err := ExpandSK(p, csk)
	if err != nil {
		b.Fatal(err)
	}
	epk, err := ExpandPK(p, cpk)
	if err != nil {
		b.Fatal(err)
	}
	msg := []byte("benchmark message")
	sig, err := signImpl(p, esk, msg)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !verifyImpl(p, epk, msg, sig) {
			b.Fatal("verification failed")
		}
	}
}
