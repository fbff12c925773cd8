package core

import "testing"

func TestParseDecimalToPaise(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"12.34", 1234, true},
		{"12,34", 1234, true},
		{"12.345", 1234, true}, // rounds down
		{"12.346", 1235, true}, // rounds up
		{"499", 49900, true},
		{"0.01", 1, true},
		{"", 0, false},
		{"0", 0, false},
		{"-5", 0, false},
		{"+5", 0, false},
		{"1.2.3", 0, false},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToPaise(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("%q: got %d, %v; want %d", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected error", tc.in)
		}
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	cases := []struct {
		amount int64
		cycle  BillingCycle
		want   int64
	}{
		{49900, Monthly, 49900},
		{149900, Yearly, 12492}, // ₹1499/yr -> ₹124.92/mo, half-up
		{1200, Yearly, 100},
		{600, Yearly, 50},
		{660, Yearly, 55},
	}
	for i, tc := range cases {
		got := MonthlyEquivalent(Money{Paise: tc.amount}, tc.cycle)
		if got.Paise != tc.want {
			t.Fatalf("case %d: got %d, want %d", i, got.Paise, tc.want)
		}
	}
}

func TestMoneyString(t *testing.T) {
	cases := []struct {
		paise int64
		want  string
	}{
		{123456, "₹1234.56"},
		{-4500, "-₹45.00"},
		{0, "₹0.00"},
	}
	for i, tc := range cases {
		if got := (Money{Paise: tc.paise}).String(); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}
