package mayo

import "testing"

func TestAPIRoundTrip(t *testing.T) {
	for _, v := range []Variant{MAYO1, MAYO2, MAYO3, MAYO5} {
		cpk, csk, err := Keypair(v)
		if err != nil {
			t.Fatalf("%s: Keypair: %v", v, err)
		}
		msg := []byte("api round trip")
		sig, err := Sign(v, csk, msg)
		if err != nil {
			t.Fatalf("%s: Sign: %v", v, err)
		}
		if !Verify(v, cpk, msg, sig) {
			t.Fatalf("%s: Verify rejected a valid signature", v)
		}
	}
}

func TestAPISignOpen(t *testing.T) {
	cpk, csk, err := Keypair(MAYO1)
	if err != nil {
		t.Fatalf("Keypair: %v", err)
	}
	msg := []byte("sign_open payload")
	sig, err := Sign(MAYO1, csk, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	bundle := append(append([]byte(nil), sig...), msg...)
	opened, ok := SignOpen(MAYO1, cpk, bundle)
	if !ok {
		t.Fatal("SignOpen rejected a valid bundle")
	}
	if string(opened) != string(msg) {
		t.Fatalf("SignOpen returned %q, want %q", opened, msg)
	}
}

func TestAPICrossVariantRejected(t *testing.T) {
	cpk1, csk1, err := Keypair(MAYO1)
	if err != nil {
		t.Fatalf("Keypair(MAYO1): %v", err)
	}
	_, csk2, err := Keypair(MAYO2)
	if err != nil {
		t.Fatalf("Keypair(MAYO2): %v", err)
	}

	msg := []byte("cross variant")
	sig1, err := Sign(MAYO1, csk1, msg)
	if err != nil {
		t.Fatalf("Sign(MAYO1): %v", err)
	}
	_, err = Sign(MAYO2, csk2, msg)
	if err != nil {
		t.Fatalf("Sign(MAYO2): %v", err)
	}

	// A MAYO-1 signature presented to Verify under a MAYO-2 cpk is
	// rejected by length before any field arithmetic runs.
	if Verify(MAYO2, cpk1, msg, sig1) {
		t.Fatal("Verify accepted a MAYO-1 signature under a differently-sized cpk/variant")
	}
}

func TestAPISignOpenRejectsShortBundle(t *testing.T) {
	cpk, _, err := Keypair(MAYO1)
	if err != nil {
		t.Fatalf("Keypair: %v", err)
	}
	if _, ok := SignOpen(MAYO1, cpk, []byte{1, 2, 3}); ok {
		t.Fatal("SignOpen accepted a bundle shorter than SigBytes")
	}
}
