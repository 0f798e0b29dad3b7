package contacts

import (
	"fmt"
	"strings"
)

// Contact is a single parsed address book entry
type Contact struct {
	Name  string
	Email string
}

// ParseLine parses one mutt-format line (email \t name \t extra fields)
// into a Contact. The first field is taken verbatim as the email and the
// second as the name; any trailing tab-delimited fields are ignored. Lines
// with fewer than two tab-separated fields don't parse.
func ParseLine(line string) (Contact, bool) {
	fields := strings.SplitN(line, "\t", 3)
	if len(fields) < 2 {
		return Contact{}, false
	}
	return Contact{Email: fields[0], Name: fields[1]}, true
}

// FormatSelection renders the selected raw lines as a single insertable
// string: each contact as "Name" <email>, joined by ", " in selection
// order. Lines that don't parse are dropped from the output.
func FormatSelection(lines []string) string {
	var parts []string
	for _, line := range lines {
		contact, ok := ParseLine(line)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%q <%s>", contact.Name, contact.Email))
	}
	return strings.Join(parts, ", ")
}
