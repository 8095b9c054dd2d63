package types

import "testing"

func TestBRL_RoundsToCentavos(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 12.2, want: "12.2"},
		{in: 17.005, want: "17.01"},
		{in: -3.333, want: "-3.33"},
		{in: 0, want: "0"},
	}
	for _, tt := range tests {
		m := BRL(tt.in)
		if m.Amount.String() != tt.want {
			t.Errorf("BRL(%v) = %s, want %s", tt.in, m.Amount.String(), tt.want)
		}
		if m.Currency != CurrencyBRL {
			t.Errorf("currency = %q", m.Currency)
		}
	}
}

func TestDecimalComma(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   string
	}{
		{in: 1234.5, places: 2, want: "1234,50"},
		{in: -0.125, places: 2, want: "-0,13"},
		{in: 42, places: 0, want: "42"},
	}
	for _, tt := range tests {
		if got := DecimalComma(tt.in, tt.places); got != tt.want {
			t.Errorf("DecimalComma(%v, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 1234567.891, want: "R$ 1.234.567,89"},
		{in: 999.999, want: "R$ 1.000,00"},
		{in: 0.5, want: "R$ 0,50"},
		{in: -5, want: "-R$ 5,00"},
		{in: 0, want: "R$ 0,00"},
	}
	for _, tt := range tests {
		if got := BRL(tt.in).String(); got != tt.want {
			t.Errorf("BRL(%v).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
