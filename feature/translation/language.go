package translation

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ValidateLanguage checks that code is a well-formed BCP 47 tag such as
// "ru-RU" or "zh-Hans" and returns it trimmed. The backend stores codes as
// given, so the tag is not canonicalized.
func ValidateLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("language code is required")
	}
	if _, err := language.Parse(code); err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return code, nil
}
