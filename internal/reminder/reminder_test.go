package reminder

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "00:00", want: TimeOfDay{0, 0}},
		{in: "07:05", want: TimeOfDay{7, 5}},
		{in: "14:30", want: TimeOfDay{14, 30}},
		{in: "23:59", want: TimeOfDay{23, 59}},
		{in: " 9:15 ", want: TimeOfDay{9, 15}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:10", wantErr: true},
		{in: "1230", wantErr: true},
		{in: "aa:bb", wantErr: true},
		{in: "09:15x", wantErr: true},
		{in: "0x9:15", wantErr: true},
		{in: "09:1 5", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q): expected error, got %v", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if s := (TimeOfDay{Hour: 7, Minute: 5}).String(); s != "07:05" {
		t.Errorf("String() = %q, want %q", s, "07:05")
	}
}

func TestAtTruncatesToMinute(t *testing.T) {
	moment := time.Date(2025, 3, 1, 14, 30, 59, 123, time.Local)
	if got := At(moment); got != (TimeOfDay{14, 30}) {
		t.Errorf("At() = %v, want 14:30", got)
	}
}
