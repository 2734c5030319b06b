package pricing

import "testing"

func TestToggle(t *testing.T) {
	if Monthly.Toggle() != Yearly {
		t.Error("Monthly.Toggle() != Yearly")
	}
	if Yearly.Toggle() != Monthly {
		t.Error("Yearly.Toggle() != Monthly")
	}
}

func TestParseBilling(t *testing.T) {
	tests := []struct {
		in      string
		want    Billing
		wantErr bool
	}{
		{"", Monthly, false},
		{"monthly", Monthly, false},
		{"Yearly", Yearly, false},
		{"annual", Yearly, false},
		{"weekly", Monthly, true},
	}

	for _, tt := range tests {
		got, err := ParseBilling(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBilling(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseBilling(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		b    Billing
		want string
	}{
		{"free", Plan{}, Monthly, "Free"},
		{"monthly", Plan{Monthly: 900}, Monthly, "$9/mo"},
		{"yearly", Plan{Monthly: 900, Yearly: 9000}, Yearly, "$90/yr"},
		{"cents", Plan{Monthly: 499}, Monthly, "$4.99/mo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Price(tt.plan, tt.b); got != tt.want {
				t.Errorf("Price() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestYearlyNote(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want string
	}{
		{"two months", Plan{Monthly: 900, Yearly: 9000}, "2 months free"},
		{"one month", Plan{Monthly: 1000, Yearly: 11000}, "1 month free"},
		{"odd saving", Plan{Monthly: 999, Yearly: 9999}, "save $19.89"},
		{"no saving", Plan{Monthly: 900, Yearly: 10800}, ""},
		{"free", Plan{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearlyNote(tt.plan); got != tt.want {
				t.Errorf("YearlyNote() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuiltinPlans(t *testing.T) {
	plans := Plans()
	if len(plans) != 3 {
		t.Fatalf("len(Plans()) = %d, want 3", len(plans))
	}
	if Price(plans[0], Yearly) != "Free" {
		t.Errorf("first plan should be free, got %q", Price(plans[0], Yearly))
	}
	if YearlyNote(plans[1]) != "2 months free" {
		t.Errorf("Pro yearly note = %q", YearlyNote(plans[1]))
	}
}
