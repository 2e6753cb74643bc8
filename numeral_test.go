package natural

import (
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"testing"
)

// bigValue evaluates the digits of x with math/big, as an oracle.
func bigValue(x Natural) *big.Int {
	var v, bd big.Int
	b := big.NewInt(int64(x.Base()))
	ds := x.Digits()
	for i := len(ds) - 1; i >= 0; i-- {
		bd.SetUint64(uint64(ds[i]))
		v.Mul(&v, b)
		v.Add(&v, &bd)
	}
	return &v
}

func TestEncode(t *testing.T) {

	testSpec := []struct {
		radix   int
		intv    *big.Int
		numeral []uint16
	}{
		{
			10,
			big.NewInt(100),
			[]uint16{1, 0, 0},
		},
		{
			36,
			big.NewInt(0).Exp(big.NewInt(36), big.NewInt(7), nil),
			[]uint16{1, 0, 0, 0, 0, 0, 0, 0},
		},
		{
			2,
			big.NewInt(5),
			[]uint16{0, 0, 1, 0, 1},
		},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			v, err := Num(spec.numeral, spec.radix)
			if err != nil {
				t.Fatalf("error in Num: %s", err)
			}
			if bigValue(v).Cmp(spec.intv) != 0 {
				t.Fatalf("expected %v got %v", spec.intv, bigValue(v))
			}
			r := make([]uint16, len(spec.numeral))
			if _, err := Str(v, r); err != nil {
				t.Fatalf("error in Str: %s", err)
			}
			if !reflect.DeepEqual(spec.numeral, r) {
				t.Fatalf("Encode numeral incorrect: %v", r)
			}

			rev := make([]uint16, len(spec.numeral))
			if _, err := StrRev(v, rev); err != nil {
				t.Fatalf("error in StrRev: %s", err)
			}
			w, err := NumRev(rev, spec.radix)
			if err != nil {
				t.Fatalf("error in NumRev: %s", err)
			}
			if !w.Equal(v) {
				t.Fatalf("NumRev(StrRev(x)) = %v, want %v", w, v)
			}
		})
	}
}

func TestEncodeError(t *testing.T) {

	testSpec := []struct {
		radix   int
		numeral []uint16
		want    error
	}{
		{
			10,
			[]uint16{10, 0, 0},
			ErrDigitNotValidForBase,
		},
		{
			37,
			[]uint16{1, 0, 0, 0, 0, 0, 0, 0},
			ErrInvalidBase,
		},
		{
			1,
			[]uint16{0},
			ErrInvalidBase,
		},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			if _, err := Num(spec.numeral, spec.radix); !errors.Is(err, spec.want) {
				t.Fatalf("Num: got %v, want %v", err, spec.want)
			}
			if _, err := NumRev(spec.numeral, spec.radix); !errors.Is(err, spec.want) {
				t.Fatalf("NumRev: got %v, want %v", err, spec.want)
			}
		})
	}
}

func TestDecodeError(t *testing.T) {
	x, err := FromInt(100, 10)
	if err != nil {
		t.Fatalf("FromInt: %s", err)
	}
	r := []uint16{7, 7}
	if _, err := Str(x, r); !errors.Is(err, ErrNumeralTooSmall) {
		t.Fatalf("Str: got %v, want ErrNumeralTooSmall", err)
	}
	if !reflect.DeepEqual([]uint16{7, 7}, r) {
		t.Fatalf("Str touched the destination on error: %v", r)
	}
	if _, err := StrRev(x, r); !errors.Is(err, ErrNumeralTooSmall) {
		t.Fatalf("StrRev: got %v, want ErrNumeralTooSmall", err)
	}
}

func TestLeadingZeroNumeral(t *testing.T) {
	v, err := Num([]uint16{0, 0, 4, 2}, 10)
	if err != nil {
		t.Fatalf("error in Num: %s", err)
	}
	if !reflect.DeepEqual([]uint16{2, 4}, v.Digits()) {
		t.Fatalf("Num kept leading zeros: %v", v.Digits())
	}
	z, err := Num([]uint16{0, 0, 0}, 7)
	if err != nil {
		t.Fatalf("error in Num: %s", err)
	}
	if !z.IsZero() {
		t.Fatalf("all-zero numeral is %v, want zero", z)
	}
}

func TestDecodeNum(t *testing.T) {
	c, err := NewCodec("abcdefghij")
	if err != nil {
		t.Fatalf("Error making codec: %s", err)
	}
	x, err := Parse("305", 10)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	s, err := DecodeNum(x, 5, c)
	if err != nil {
		t.Fatalf("DecodeNum: %s", err)
	}
	if s != "aadaf" {
		t.Fatalf("DecodeNum = %q, want \"aadaf\"", s)
	}

	y, err := Parse("F", 16)
	if err != nil {
		t.Fatalf("Parse: %s", err)
	}
	if _, err := DecodeNum(y, 2, c); !errors.Is(err, ErrDigitOutOfRange) {
		t.Fatalf("DecodeNum with a short alphabet: got %v, want ErrDigitOutOfRange", err)
	}
}
