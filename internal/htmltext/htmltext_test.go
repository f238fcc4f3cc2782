package htmltext

import (
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Elite16 Gstaad", "Elite16 Gstaad"},
		{"named entities", "Rock &amp; Roll &quot;Open&quot;", `Rock & Roll "Open"`},
		{"apostrophe entity", "King&#039;s Cup", "King's Cup"},
		{"angle bracket entities", "&lt;b&gt;", "<b>"},
		{"nbsp entity", "a&nbsp;b", "a b"},
		{"literal nbsp", "a b", "a b"},
		{"unknown entity kept", "caf&eacute;", "caf&eacute;"},
		{"whitespace collapsed", "  a \t b\n\nc  ", "a b c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.in); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeIdempotent(t *testing.T) {
	inputs := []string{
		"Elite16 &amp; Finals",
		"  spaced   out  ",
		"plain",
	}

	for _, in := range inputs {
		once := Decode(in)
		if twice := Decode(once); twice != once {
			t.Errorf("Decode not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple tags", "<b>Mol/Sorum</b>", "Mol/Sorum"},
		{"nested markup", `<a href="/x"><span>Vienna</span> Open</a>`, "Vienna Open"},
		{"tags become separators", "<td>a</td><td>b</td>", "a b"},
		{"entities after stripping", "<i>Rock &amp; Roll</i>", "Rock & Roll"},
		{"no tags", "plain text", "plain text"},
		{"only tags", "<br/><hr>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
