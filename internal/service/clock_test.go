package service

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{in: "08:00", hour: 8, minute: 0},
		{in: "23:59", hour: 23, minute: 59},
		{in: "0:05", hour: 0, minute: 5},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "12", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, minute, err := ParseClock(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.in, hour, minute, tt.hour, tt.minute)
			}
		})
	}
}
