package seed

import (
	"errors"
	"slices"
	"testing"
)

func TestPresets(t *testing.T) {
	if got := Presets(); !slices.Equal(got, []string{"alternating", "center", "ends", "random"}) {
		t.Fatalf("presets = %v", got)
	}

	cases := map[string][]uint8{
		"center":      {0, 0, 1, 0, 0},
		"ends":        {1, 0, 0, 0, 1},
		"alternating": {0, 1, 0, 1, 0},
	}
	for name, want := range cases {
		got, err := Generate(name, 5, 0)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !slices.Equal(got, want) {
			t.Fatalf("%s = %v, expected %v", name, got, want)
		}
	}
}

func TestRandomPresetSeeded(t *testing.T) {
	a, err := Generate("random", 64, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Generate("random", 64, 42)
	c, _ := Generate("random", 64, 43)
	if !slices.Equal(a, b) {
		t.Fatal("random preset not deterministic for one seed")
	}
	if slices.Equal(a, c) {
		t.Fatal("different seeds should give different rows")
	}
	for i, v := range a {
		if v > 1 {
			t.Fatalf("cell %d = %d", i, v)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate("glider", 10, 0); !errors.Is(err, ErrInvalid) {
		t.Fatalf("unknown preset: %v", err)
	}
	if _, err := Generate("center", 2, 0); !errors.Is(err, ErrInvalid) {
		t.Fatalf("narrow width: %v", err)
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		in   string
		enc  Encoding
		want []uint8
	}{
		{"00100", EncodingBinary, []uint8{0, 0, 1, 0, 0}},
		{"0b1_01", EncodingBinary, []uint8{1, 0, 1}},
		{"a", EncodingHex, []uint8{1, 0, 1, 0}},
		{"0x1F", EncodingHex, []uint8{0, 0, 0, 1, 1, 1, 1, 1}},
		{"A", EncodingText, []uint8{0, 1, 0, 0, 0, 0, 0, 1}},
	}
	for _, tc := range cases {
		got, err := Decode(tc.in, tc.enc)
		if err != nil {
			t.Fatalf("Decode(%q, %s): %v", tc.in, tc.enc, err)
		}
		if !slices.Equal(got, tc.want) {
			t.Fatalf("Decode(%q, %s) = %v, expected %v", tc.in, tc.enc, got, tc.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		in  string
		enc Encoding
	}{
		{"0012", EncodingBinary},
		{"01", EncodingBinary},
		{"", EncodingText},
		{"xyz", EncodingHex},
		{"0101", Encoding("base64")},
	}
	for _, tc := range cases {
		_, err := Decode(tc.in, tc.enc)
		var se *Error
		if !errors.As(err, &se) || !errors.Is(err, ErrInvalid) {
			t.Fatalf("Decode(%q, %s) err = %v", tc.in, tc.enc, err)
		}
	}
}

func TestParseEncoding(t *testing.T) {
	for _, name := range []string{"bin", "hex", "text"} {
		if _, err := ParseEncoding(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := ParseEncoding("oct"); err == nil {
		t.Fatal("expected error for oct")
	}
}
