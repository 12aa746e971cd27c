package filter

import (
	"testing"

	"github.com/not-matthias/fdtrace/internal/session"
)

func TestParseExpr(t *testing.T) {
	s := session.FileSession{
		Path:    "/var/log/app.log",
		OpenTS:  0,
		CloseTS: 500,
		Events: []session.FileEvent{
			{Kind: session.ReadEvent, Bytes: 10},
			{Kind: session.WriteEvent, Bytes: 1000},
		},
	}

	cases := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"reads", true},
		{"writes", true},
		{"path~log", true},
		{"path~tmp", false},
		{"duration>=500", true},
		{"duration>=501", false},
		{"bytes>=1000", true},
		{"bytes>=1001", false},
	}

	for _, c := range cases {
		crit, err := ParseExpr(c.expr)
		if err != nil {
			t.Fatalf("ParseExpr(%q): %v", c.expr, err)
		}
		if got := crit.Eval(s); got != c.want {
			t.Errorf("ParseExpr(%q).Eval(s) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestParseExpr_Invalid(t *testing.T) {
	if _, err := ParseExpr("bogus"); err == nil {
		t.Fatal("expected error for unrecognized expression")
	}
	if _, err := ParseExpr("duration>=abc"); err == nil {
		t.Fatal("expected error for bad numeric value")
	}
}
