package scaffold

import (
	"bytes"
	"encoding/xml"
	"path"
	"regexp"
	"strings"
)

// placeholderPattern matches "$$", "$name", "${name}" and, as the last
// alternative, a bare "$" that starts none of them.
var placeholderPattern = regexp.MustCompile(`(?i)\$(?:(\$)|([_a-z][_a-z0-9]*)|\{([_a-z][_a-z0-9]*)\}|())`)

// Render substitutes placeholders in text with values. "$$" yields a literal
// "$". A placeholder without a value, or a "$" that starts no placeholder,
// fails the whole render with a *TemplateError.
func Render(name, text string, values map[string]string) ([]byte, error) {
	escape := escaperFor(name)

	var buf bytes.Buffer
	last := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		buf.WriteString(text[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0:
			buf.WriteByte('$')
		case m[4] >= 0 || m[6] >= 0:
			key := submatch(text, m, 2)
			if key == "" {
				key = submatch(text, m, 3)
			}
			value, ok := values[key]
			if !ok {
				line, col := position(text, m[0])
				return nil, &TemplateError{Template: name, Key: key, Line: line, Column: col}
			}
			buf.WriteString(escape(value))
		default:
			line, col := position(text, m[0])
			return nil, &TemplateError{Template: name, Line: line, Column: col}
		}
	}
	buf.WriteString(text[last:])
	return buf.Bytes(), nil
}

// Placeholders returns the distinct keys referenced by text, in order of
// first appearance.
func Placeholders(text string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		key := submatch(text, m, 2)
		if key == "" {
			key = submatch(text, m, 3)
		}
		if key != "" && !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func submatch(text string, m []int, group int) string {
	start, end := m[2*group], m[2*group+1]
	if start < 0 {
		return ""
	}
	return text[start:end]
}

// position converts a byte offset into a 1-based line and column.
func position(text string, offset int) (int, int) {
	before := text[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")
	return line, col
}

// escaperFor picks the value escaping that keeps the rendered file well-formed.
func escaperFor(name string) func(string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".xml":
		return escapeXML
	case ".gradle":
		return escapeGradleString
	case ".java":
		return escapeStringLiteral
	default:
		return func(s string) string { return s }
	}
}

func escapeXML(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

var stringLiteralReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeStringLiteral(s string) string {
	return stringLiteralReplacer.Replace(s)
}

// gradleStringReplacer escapes values for Groovy double-quoted strings whose
// content may also land in an Android string resource via resValue.
var gradleStringReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, `$`, `\$`, `'`, `\\'`)

func escapeGradleString(s string) string {
	return gradleStringReplacer.Replace(s)
}
