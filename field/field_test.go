package field

import "testing"

func TestFieldAxioms(t *testing.T) {
	for a := 0; a < 16; a++ {
		for b := 0; b < 16; b++ {
			av, bv := byte(a), byte(b)

			if Add(av, bv) != Add(bv, av) {
				t.Fatalf("+ not commutative for %d,%d", a, b)
			}
			if Mul(av, bv) != Mul(bv, av) {
				t.Fatalf("* not commutative for %d,%d", a, b)
			}
			if Add(av, Zero) != av {
				t.Fatalf("0 is not additive identity for %d", a)
			}
			if Mul(av, One) != av {
				t.Fatalf("1 is not multiplicative identity for %d", a)
			}

			for c := 0; c < 16; c++ {
				cv := byte(c)
				if Add(Add(av, bv), cv) != Add(av, Add(bv, cv)) {
					t.Fatalf("+ not associative for %d,%d,%d", a, b, c)
				}
				if Mul(Mul(av, bv), cv) != Mul(av, Mul(bv, cv)) {
					t.Fatalf("* not associative for %d,%d,%d", a, b, c)
				}
				if Mul(av, Add(bv, cv)) != Add(Mul(av, bv), Mul(av, cv)) {
					t.Fatalf("distributivity failed for %d,%d,%d", a, b, c)
				}
			}
		}
		if a != 0 {
			if Mul(byte(a), Inv(byte(a))) != One {
				t.Fatalf("inverse failed for %d", a)
			}
		}
	}
}

func TestAddIsSelfInverse(t *testing.T) {
	for a := byte(0); a < 16; a++ {
		for b := byte(0); b < 16; b++ {
			if Add(Add(a, b), b) != a {
				t.Fatalf("a+b+b should equal a for a=%d b=%d, got %d", a, b, Add(Add(a, b), b))
			}
		}
	}
}

func TestInvZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Inv(0) should panic")
		}
	}()
	Inv(0)
}
