package router

import "testing"

func TestLookup(t *testing.T) {
	tests := map[string]View{
		"":          Dashboard,
		"music":     Music,
		"JOURNAL":   Journal,
		"pom":       Pomodoro,
		"wrt":       Writing,
		"bks":       Books,
		"me":        Me,
		"zzzz":      Dashboard,
		"  study  ": Study,
	}
	for in, want := range tests {
		if got := Lookup(in); got != want {
			t.Errorf("Lookup(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestRouterCycles(t *testing.T) {
	var r Router
	if r.Current() != Dashboard {
		t.Fatalf("zero router shows %s", r.Current())
	}
	if got := r.Prev(); got != Music {
		t.Fatalf("prev from dashboard = %s", got)
	}
	if got := r.Next(); got != Dashboard {
		t.Fatalf("next from music = %s", got)
	}
	for range Views {
		r.Next()
	}
	if r.Current() != Dashboard {
		t.Fatalf("full cycle ended on %s", r.Current())
	}
	r.Set("Nowhere")
	if r.Current() != Dashboard {
		t.Fatalf("unknown view selected %s", r.Current())
	}
	r.Set(Learn)
	if r.Current() != Learn {
		t.Fatalf("set learn, got %s", r.Current())
	}
}
