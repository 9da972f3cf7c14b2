package ledger

import "testing"

func TestRuleRound(t *testing.T) {
	rules := DefaultRules()
	tests := []struct {
		currency string
		in       string
		want     string
	}{
		// Cash: 2 places, half to even
		{"Cash", "0.125", "0.12"},
		{"Cash", "0.135", "0.14"},
		{"Cash", "-0.125", "-0.12"},
		{"Cash", "2.675", "2.68"},
		{"Cash", "10.005", "10"},
		{"Cash", "1.126", "1.13"},
		// everything else: 10 places, half away from zero
		{"Bitcoin", "0.00000000005", "0.0000000001"},
		{"Bitcoin", "-0.00000000005", "-0.0000000001"},
		{"Bitcoin", "0.00000000025", "0.0000000003"},
		{"Ethereum", "1.12345678904", "1.123456789"},
		{"Unknown Currency", "3", "3"},
	}
	for _, tt := range tests {
		got := rules.For(tt.currency).Round(dec(t, tt.in))
		assertDecimal(t, tt.currency+" round("+tt.in+")", got, tt.want)
	}
}

func TestRuleFormat(t *testing.T) {
	rules := DefaultRules()
	if got := rules.For("Cash").Format(dec(t, "12")); got != "12.00" {
		t.Errorf("Cash format = %q, want 12.00", got)
	}
	if got := rules.For("Cash").Format(dec(t, "0.125")); got != "0.12" {
		t.Errorf("Cash format = %q, want 0.12", got)
	}
	if got := rules.For("Bitcoin").Format(dec(t, "0.5")); got != "0.5000000000" {
		t.Errorf("Bitcoin format = %q, want 0.5000000000", got)
	}
}

func TestParseRoundingMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RoundingMode
		wantErr bool
	}{
		{"half-even", HalfEven, false},
		{"Bankers", HalfEven, false},
		{"half-away-from-zero", HalfAwayFromZero, false},
		{"", HalfAwayFromZero, false},
		{"ceil", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseRoundingMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseRoundingMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRulesWith(t *testing.T) {
	base := DefaultRules()
	usd := base.With("USD", Rule{Places: 2, Mode: HalfEven})

	if got := usd.For("USD"); got.Places != 2 || got.Mode != HalfEven {
		t.Errorf("USD rule = %+v", got)
	}
	if got := base.For("USD"); got.Places != 10 {
		t.Errorf("base rules were modified: USD = %+v", got)
	}
	if got := usd.For("Cash"); got.Places != 2 || got.Mode != HalfEven {
		t.Errorf("Cash rule lost: %+v", got)
	}
}
