package paths

import (
	"path"
	"strings"

	"github.com/arthur-debert/amlpack/pkg/errors"
)

// invalidChars cannot appear in a file name on at least one supported
// platform.
const invalidChars = `<>:"/\|?*`

// reservedNames are device names Windows refuses as file names, with or
// without an extension.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// CleanFileName makes name safe to use as a single path segment on any
// platform. It strips invalid and control characters, trims trailing dots
// and spaces, and prefixes reserved device names. The result is never empty.
func CleanFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r < 32 || r == 0x7f || strings.ContainsRune(invalidChars, r) {
			continue
		}
		b.WriteRune(r)
	}

	clean := strings.TrimRight(strings.TrimSpace(b.String()), ". ")
	if clean == "" {
		return "_"
	}

	stem := clean
	if i := strings.IndexByte(stem, '.'); i >= 0 {
		stem = stem[:i]
	}
	if reservedNames[strings.ToUpper(stem)] {
		clean = "_" + clean
	}
	return clean
}

// ValidateRelative checks that p is a clean, slash-separated path that stays
// inside the directory it is joined to.
func ValidateRelative(p string) error {
	if p == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	if strings.Contains(p, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	if len(p) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	if path.IsAbs(p) || strings.HasPrefix(p, `\`) || (len(p) > 1 && p[1] == ':') {
		return errors.Newf(errors.ErrInvalidInput, "path %q must be relative", p)
	}

	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return errors.Newf(errors.ErrInvalidInput, "path %q escapes the export root", p)
	}

	return nil
}
