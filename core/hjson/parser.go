package hjson

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultRoot holds the fixed namespace segments every key starts with.
var DefaultRoot = []string{"Mods", "PathOfTerraria"}

var (
	// keyValuePattern captures a quoted key (1) or a bare key (2) and the remainder after the colon (3).
	keyValuePattern = regexp.MustCompile(`^\s*(?:"([^"]+)"|([\w.-]+))\s*:\s*(.*)\s*$`)
	// closePattern matches lines made only of closing braces and commas, e.g. "}", "},", "}, }".
	closePattern = regexp.MustCompile(`^\}[},\s]*$`)
)

// Parser converts HJSON-like localization text into flat translation keys.
// The zero value uses DefaultRoot.
type Parser struct {
	// Root is prepended to every emitted key.
	Root []string
}

// Parse parses text with DefaultRoot.
func Parse(text, category string) *Translations {
	return Parser{}.Parse(text, category)
}

// ParseReader reads r fully and parses its content.
func ParseReader(r io.Reader, category string) (*Translations, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation source: %w", err)
	}
	return Parse(string(data), category), nil
}

// Parse returns the leaf assignments of text keyed by their fully-qualified dotted key.
// Blank text or an empty category yields an empty mapping. A whitespace-only
// category is not empty and is used as given.
func (p Parser) Parse(text, category string) *Translations {
	out := NewTranslations()
	if strings.TrimSpace(text) == "" || category == "" {
		return out
	}

	root := p.Root
	if root == nil {
		root = DefaultRoot
	}

	var path pathStack
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if closePattern.MatchString(line) {
			for range strings.Count(line, "}") {
				path.pop()
			}
			continue
		}

		m := keyValuePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		key := strings.TrimSpace(m[1])
		if key == "" {
			key = strings.TrimSpace(m[2])
		}

		rest := strings.TrimSpace(m[3])
		if strings.HasSuffix(rest, ",") {
			rest = strings.TrimSpace(rest[:len(rest)-1])
		}

		if rest == "{" {
			path.push(key)
			continue
		}

		segments := make([]string, 0, len(root)+path.depth()+2)
		segments = append(segments, root...)
		segments = append(segments, category)
		segments = append(segments, path.segments...)
		segments = append(segments, key)

		out.Set(strings.Join(segments, "."), unquote(rest))
	}

	return out
}

// unquote strips one pair of matching double or single quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}
