package snapshot

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAgeAt(t *testing.T) {
	birthdate := date("1958-07-08")

	tests := []struct {
		name      string
		reference string
		want      float64
	}{
		{name: "january reference", reference: "2024-01-10", want: 65.5},
		{name: "march reference", reference: "2024-03-05", want: 65.7},
		{name: "may reference", reference: "2024-05-31", want: 65.9},
		{name: "same day", reference: "1958-07-08", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeAt(birthdate, date(tt.reference)); got != tt.want {
				t.Errorf("AgeAt(%s) = %v, want %v", tt.reference, got, tt.want)
			}
		})
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 65.5, want: "65.5"},
		{in: 66.0, want: "66.0"},
		{in: 0.0, want: "0.0"},
	}

	for _, tt := range tests {
		if got := FormatAge(tt.in); got != tt.want {
			t.Errorf("FormatAge(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
