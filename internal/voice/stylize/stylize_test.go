package stylize

import (
	"strings"
	"testing"
)

func TestDisabledReturnsInputUnchanged(t *testing.T) {
	in := "Drink some water"
	if got := Apply(in, false); got != in {
		t.Errorf("Apply(disabled) = %q, want %q", got, in)
	}
}

func TestMarkerSuppressesFlourish(t *testing.T) {
	cases := []string{
		"Call Mika-chan",
		"sou desu",
		"NYA nya",
		"Ask Senpai about it",
		"Tanaka-kun is waiting",
	}
	for _, in := range cases {
		if got := Apply(in, true); got != in {
			t.Errorf("Apply(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestFlourishAppended(t *testing.T) {
	in := "Time for the meeting"
	got := Apply(in, true)
	if !strings.HasPrefix(got, in+" ") {
		t.Fatalf("Apply(%q) = %q, want %q + space + flourish", in, got, in)
	}
	suffix := strings.TrimPrefix(got, in+" ")
	// Выбор случайный, проверяем только принадлежность набору
	valid := false
	for _, f := range flourishes {
		if suffix == f {
			valid = true
			break
		}
	}
	if !valid {
		t.Errorf("flourish %q not in allowed set %v", suffix, flourishes)
	}
}
