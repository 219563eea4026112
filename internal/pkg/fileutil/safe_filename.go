package fileutil

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const maxSafeNameRunes = 100

// SafeFilename keeps letters, digits, '_' and '-', turns spaces into '_'
// and caps the result at 100 runes.
func SafeFilename(text string) string {
	var b strings.Builder
	n := 0
	for _, r := range text {
		if n >= maxSafeNameRunes {
			break
		}
		if r == ' ' {
			r = '_'
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			b.WriteRune(r)
			n++
		}
	}
	return b.String()
}

// RandomHex returns n lowercase hex characters (n <= 32) from a fresh UUIDv4.
func RandomHex(n int) string {
	h := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}

// IsPlainFilename reports whether name is a bare file name that cannot
// escape the directory it is joined to.
func IsPlainFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}
