package normalize

import "testing"

func TestTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"14:30", "14:30"},
		{"00:00", "00:00"},
		{"2:30 PM", "14:30"},
		{"2:30pm", "14:30"},
		{"2 pm", "14:00"},
		{"12 pm", "12:00"},
		{"12 am", "00:00"},
		{"12:30 a.m.", "00:30"},
		{"9:30", "09:30"},
		{"11:45 AM", "11:45"},
	}
	for _, tt := range tests {
		got := Time(tt.in)
		if got == nil {
			t.Errorf("Time(%q) = nil, want %q", tt.in, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("Time(%q) = %q, want %q", tt.in, *got, tt.want)
		}
	}
}

func TestTimeUnparseable(t *testing.T) {
	for _, in := range []string{"garbage", "", "25:00", "13 pm", "noonish", "12"} {
		if got := Time(in); got != nil {
			t.Errorf("Time(%q) = %q, want nil", in, *got)
		}
	}
}
