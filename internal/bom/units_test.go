package bom_test

import (
	"testing"

	"github.com/danilo1273/confeitaria/backend-go/internal/bom"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		spec      bom.UnitSpec
		qty       float64
		from, to  string
		want      float64
		converted bool
	}{
		{
			name:      "identical tokens",
			spec:      bom.UnitSpec{Native: "un"},
			qty:       3, from: "un", to: "un",
			want: 3, converted: true,
		},
		{
			name:      "identical tokens case-insensitive",
			spec:      bom.UnitSpec{Native: "kg"},
			qty:       2.5, from: "KG", to: "kg",
			want: 2.5, converted: true,
		},
		{
			name:      "declared factor forward",
			spec:      bom.UnitSpec{Native: "un", Alt: "g", Factor: 50},
			qty:       4, from: "un", to: "g",
			want: 200, converted: true,
		},
		{
			name:      "declared factor inverse",
			spec:      bom.UnitSpec{Native: "un", Alt: "g", Factor: 50},
			qty:       200, from: "g", to: "un",
			want: 4, converted: true,
		},
		{
			name:      "fixed table kg to g",
			spec:      bom.UnitSpec{Native: "kg"},
			qty:       1.25, from: "kg", to: "g",
			want: 1250, converted: true,
		},
		{
			name:      "fixed table g to kg",
			spec:      bom.UnitSpec{Native: "kg"},
			qty:       1250, from: "g", to: "kg",
			want: 1.25, converted: true,
		},
		{
			name:      "fixed table l to ml",
			spec:      bom.UnitSpec{Native: "l"},
			qty:       0.5, from: "l", to: "ml",
			want: 500, converted: true,
		},
		{
			name:      "fixed table ml to l",
			spec:      bom.UnitSpec{Native: "l"},
			qty:       500, from: "ml", to: "l",
			want: 0.5, converted: true,
		},
		{
			name:      "declared factor takes precedence over fixed table",
			spec:      bom.UnitSpec{Native: "kg", Alt: "g", Factor: 800},
			qty:       1, from: "kg", to: "g",
			want: 800, converted: true,
		},
		{
			name:      "non-positive declared factor degrades to fixed table",
			spec:      bom.UnitSpec{Native: "kg", Alt: "g", Factor: 0},
			qty:       2, from: "kg", to: "g",
			want: 2000, converted: true,
		},
		{
			name:      "no rule applies",
			spec:      bom.UnitSpec{Native: "kg"},
			qty:       7, from: "saco", to: "kg",
			want: 7, converted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, converted := bom.Convert(tt.spec, tt.qty, tt.from, tt.to)
			if converted != tt.converted {
				t.Fatalf("converted = %v, want %v", converted, tt.converted)
			}
			if !almostEqual(got, tt.want) {
				t.Fatalf("quantity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertRoundTrip(t *testing.T) {
	pairs := []struct {
		name     string
		spec     bom.UnitSpec
		from, to string
	}{
		{name: "declared un/g", spec: bom.UnitSpec{Native: "un", Alt: "g", Factor: 50}, from: "un", to: "g"},
		{name: "declared kg/saco", spec: bom.UnitSpec{Native: "kg", Alt: "saco", Factor: 0.04}, from: "kg", to: "saco"},
		{name: "fixed kg/g", spec: bom.UnitSpec{Native: "kg"}, from: "kg", to: "g"},
		{name: "fixed l/ml", spec: bom.UnitSpec{Native: "l"}, from: "l", to: "ml"},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			const qty = 3.7

			forward, ok := bom.Convert(tt.spec, qty, tt.from, tt.to)
			if !ok {
				t.Fatalf("forward conversion %s -> %s did not apply", tt.from, tt.to)
			}
			back, ok := bom.Convert(tt.spec, forward, tt.to, tt.from)
			if !ok {
				t.Fatalf("inverse conversion %s -> %s did not apply", tt.to, tt.from)
			}
			if !almostEqual(back, qty) {
				t.Fatalf("round trip = %v, want %v", back, qty)
			}
		})
	}
}
