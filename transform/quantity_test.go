package transform

import "testing"

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "500m", want: 0.5},
		{in: "1", want: 1},
		{in: "2.5", want: 2.5},
		{in: "1k", want: 1e3},
		{in: "1G", want: 1e9},
		{in: "512Mi", want: 512 * (1 << 20)},
		{in: "1Gi", want: 1 << 30},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "Gi", wantErr: true},
	}
	for _, tc := range cases {
		got, err := parseQuantity(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseQuantity(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseQuantity(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parseQuantity(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidateQuantityPair(t *testing.T) {
	if err := validateQuantityPair("cpu", "500m", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateQuantityPair("memory", "512Mi", "1Gi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateQuantityPair("memory", "2Gi", "1G"); err == nil {
		t.Fatalf("expected inverted pair to fail")
	}
	if err := validateQuantityPair("cpu", "1", "1"); err != nil {
		t.Fatalf("equal request and limit must pass: %v", err)
	}
}
