package description

import "strings"

var normalizer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	`\n`, "\n",
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// Normalize prepares raw vendor text for line scanning: CRLF and bare CR
// become LF, literal backslash-n sequences become real newlines, and smart
// quotes collapse to their ASCII forms so header matching sees one spelling.
func Normalize(text string) string {
	return normalizer.Replace(text)
}
