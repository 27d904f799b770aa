package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	valid := []string{"+14155552671", "14155552671", "+44 20 7946 0958", "(415) 555-2671"}
	for _, phone := range valid {
		if !ValidatePhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}

	invalid := []string{"", "abc", "0123456", "+"}
	for _, phone := range invalid {
		if ValidatePhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestValidatePrice(t *testing.T) {
	valid := []string{"0", "45", "45.5", "45.50", "12345678.99"}
	for _, price := range valid {
		if !ValidatePrice(price) {
			t.Errorf("expected %q to be valid", price)
		}
	}

	invalid := []string{"", "-5", "45.", "45.123", "abc", "1e3"}
	for _, price := range invalid {
		if ValidatePrice(price) {
			t.Errorf("expected %q to be invalid", price)
		}
	}
}

func TestAvatarInitials(t *testing.T) {
	cases := map[string]string{
		"Sophie Laurent":    "SL",
		"Ana Maria Costa":   "AC",
		"Cher":              "C",
		"":                  "",
		"  Jamie   Nguyen ": "JN",
	}
	for name, want := range cases {
		if got := AvatarInitials(name); got != want {
			t.Errorf("AvatarInitials(%q): expected %q, got %q", name, want, got)
		}
	}
}
