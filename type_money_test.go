package assetreturns

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m      Money
		want   string
		signed string
	}{
		{m: GBP(1234.567), want: "£1,234.57", signed: "+£1,234.57"},
		{m: GBP(0), want: "£0.00", signed: "-"},
		{m: GBP(0.001), want: "£0.00", signed: "-"},
		{m: GBP(12.5).Add(GBP(0.25)), want: "£12.75", signed: "+£12.75"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.m.Decimal(), got, tc.want)
		}
		if got := tc.m.SignedString(); got != tc.signed {
			t.Errorf("%v.SignedString() = %q, want %q", tc.m.Decimal(), got, tc.signed)
		}
	}
}

func TestPercent(t *testing.T) {
	p := Ratio(0.0715)
	if got, want := p.String(), "7.15%"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Ratio(-0.05).SignedString(), "-5.00%"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if got, want := Ratio(0).SignedString(), "-"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
	if !p.Equal(Percent(7.15)) {
		t.Errorf("%v should equal 7.15%%", p)
	}
}
