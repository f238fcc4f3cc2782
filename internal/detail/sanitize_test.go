package detail

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	s := NewSanitizer("https://fivb.12ndr.at")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "script blocks removed",
			in:   `<div>before</div><script type="text/javascript">alert(1)</script><div>after</div>`,
			want: `<div>before</div><div>after</div>`,
		},
		{
			name: "multiline script removed",
			in:   "<p>x</p><script>\nvar a = 1;\n</script><p>y</p>",
			want: "<p>x</p><p>y</p>",
		},
		{
			name: "inline handlers removed",
			in:   `<a onclick="doThing()" onmouseover='hover()'>link</a>`,
			want: `<a>link</a>`,
		},
		{
			name: "origin hrefs neutralized",
			in:   `<a href="https://fivb.12ndr.at/scripts/match.php?m=1">match</a>`,
			want: `<a href="#">match</a>`,
		},
		{
			name: "single quoted origin hrefs neutralized",
			in:   `<a href='https://fivb.12ndr.at/page'>page</a>`,
			want: `<a href='#'>page</a>`,
		},
		{
			name: "relative hrefs kept",
			in:   `<a href="/scripts/match.php?m=1">match</a>`,
			want: `<a href="/scripts/match.php?m=1">match</a>`,
		},
		{
			name: "external hrefs kept",
			in:   `<a href="https://example.com/page">elsewhere</a>`,
			want: `<a href="https://example.com/page">elsewhere</a>`,
		},
		{
			// Removal leaves the surrounding whitespace behind.
			name: "blank targets removed",
			in:   `<a target="_blank" href="/x">x</a><a target='_blank'>y</a>`,
			want: `<a  href="/x">x</a><a >y</a>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeHandlerInsideScriptBody(t *testing.T) {
	s := NewSanitizer("https://fivb.12ndr.at")

	in := `<script>el.innerHTML = '<b onclick="x()">';</script><span onclick="y()">keep text</span>`
	got := s.Sanitize(in)

	if strings.Contains(got, "script") {
		t.Errorf("expected script block removed, got %q", got)
	}
	if strings.Contains(got, "onclick") {
		t.Errorf("expected handlers removed, got %q", got)
	}
	if !strings.Contains(got, "keep text") {
		t.Errorf("expected surrounding markup kept, got %q", got)
	}
}
