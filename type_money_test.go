package cryptoalloc

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money  Money
		str    string
		price  string
		signed string
	}{
		{M(0), "$0.00", "$0.00", "-"},
		{M(1234.567), "$1,234.57", "$1,234.57", "+$1,234.57"},
		{M(53000), "$53,000.00", "$53,000.00", "+$53,000.00"},
		{M(0.5), "$0.50", "$0.5000", "+$0.50"},
		{M(0.00001234), "$0.00", "$0.00001234", "-"},
	}

	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			if got := tc.money.String(); got != tc.str {
				t.Errorf("String() = %q, want %q", got, tc.str)
			}
			if got := tc.money.PriceString(); got != tc.price {
				t.Errorf("PriceString() = %q, want %q", got, tc.price)
			}
			if got := tc.money.SignedString(); got != tc.signed {
				t.Errorf("SignedString() = %q, want %q", got, tc.signed)
			}
		})
	}
}

func TestMoney_Ratio(t *testing.T) {
	if w := M(10).Ratio(M(0)); !w.IsZero() {
		t.Errorf("Ratio by zero = %v, want 0", w)
	}
	if w := M(1).Ratio(M(4)); !w.Equal(W(0.25)) {
		t.Errorf("Ratio = %v, want 0.25", w)
	}
}

func TestPercent_String(t *testing.T) {
	testCases := []struct {
		p      Percent
		str    string
		signed string
	}{
		{0, "0.00%", "-"},
		{75, "75.00%", "+75.00%"},
		{-5.666, "-5.67%", "-5.67%"},
		{W(0.003).Percent(), "0.30%", "+0.30%"},
	}
	for _, tc := range testCases {
		if got := tc.p.String(); got != tc.str {
			t.Errorf("String() = %q, want %q", got, tc.str)
		}
		if got := tc.p.SignedString(); got != tc.signed {
			t.Errorf("SignedString() = %q, want %q", got, tc.signed)
		}
	}
}
