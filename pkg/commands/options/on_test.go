package options

import (
	"testing"
	"time"
)

func TestOnDate(t *testing.T) {
	now := time.Date(2025, time.December, 5, 10, 0, 0, 0, time.UTC)
	tests := map[string]struct {
		on      string
		want    string
		wantErr bool
	}{
		"unset":          {on: "", want: ""},
		"full date":      {on: "2025-3-14", want: "2025-03-14"},
		"padded date":    {on: "2026-01-02", want: "2026-01-02"},
		"short upcoming": {on: "12/20", want: "2025-12-20"},
		"short today":    {on: "12/5", want: "2025-12-05"},
		"short wraps":    {on: "1/3", want: "2026-01-03"},
		"garbage":        {on: "soon", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			o := &OnOptions{OnString: tc.on}
			got, err := o.Date(now)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Date(%q) = %q, want %q", tc.on, got, tc.want)
			}
		})
	}
}
