package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Contact
		ok   bool
	}{
		{
			name: "email and name only",
			line: "a@b.com\tAda",
			want: Contact{Name: "Ada", Email: "a@b.com"},
			ok:   true,
		},
		{
			name: "trailing fields ignored",
			line: "x@y.com\tX Y\tnickname\thome",
			want: Contact{Name: "X Y", Email: "x@y.com"},
			ok:   true,
		},
		{
			name: "trailing empty field",
			line: "a@b.com\tAda\t",
			want: Contact{Name: "Ada", Email: "a@b.com"},
			ok:   true,
		},
		{
			name: "no tab at all",
			line: "not a contact line",
			ok:   false,
		},
		{
			name: "empty line",
			line: "",
			ok:   false,
		},
		{
			name: "email taken verbatim without validation",
			line: "not-an-email\tSomeone\t",
			want: Contact{Name: "Someone", Email: "not-an-email"},
			ok:   true,
		},
		{
			name: "no trimming of fields",
			line: " a@b.com \t Ada \t",
			want: Contact{Name: " Ada ", Email: " a@b.com "},
			ok:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatSelection(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "empty selection",
			lines: nil,
			want:  "",
		},
		{
			name:  "single contact",
			lines: []string{"a@b.com\tAda\t"},
			want:  `"Ada" <a@b.com>`,
		},
		{
			name:  "two contacts joined in selection order",
			lines: []string{"b@c.org\tBob\t", "a@b.com\tAda\t"},
			want:  `"Bob" <b@c.org>, "Ada" <a@b.com>`,
		},
		{
			name:  "malformed line dropped",
			lines: []string{"a@b.com\tAda\t", "garbage with no tabs", "c@d.net\tCyd\t"},
			want:  `"Ada" <a@b.com>, "Cyd" <c@d.net>`,
		},
		{
			name:  "all malformed",
			lines: []string{"one", "two"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSelection(tt.lines))
		})
	}
}
