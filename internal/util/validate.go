package util

import (
	"fmt"
	"strings"
	"unicode"
)

// unsafeSegmentChars would change the meaning of a URL if appended to a path
// without escaping.
const unsafeSegmentChars = "/?#%"

// ValidatePathSegment checks that s can be appended to a URL path as a single
// segment without escaping:
//   - Not empty
//   - No '/', '?', '#' or '%' characters
//   - No whitespace or control characters
func ValidatePathSegment(s string) error {
	if s == "" {
		return fmt.Errorf("path segment must not be empty")
	}
	if s == "." || s == ".." {
		return fmt.Errorf("path segment %q is a relative reference", s)
	}

	if i := strings.IndexAny(s, unsafeSegmentChars); i >= 0 {
		return fmt.Errorf("path segment %q contains reserved character %q", s, string(s[i]))
	}

	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("path segment %q contains whitespace or control characters", s)
		}
	}

	return nil
}
