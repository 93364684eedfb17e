package session

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidName is returned for player names the score files cannot hold.
var ErrInvalidName = errors.New("session: invalid player name")

// MaxNameLen is the longest accepted player name, in runes.
const MaxNameLen = 10

// NormalizeName trims name and checks it is 1 to MaxNameLen printable runes
// without commas.
func NormalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return "", fmt.Errorf("%w: name is empty", ErrInvalidName)
	case n > MaxNameLen:
		return "", fmt.Errorf("%w: %q is longer than %d characters", ErrInvalidName, name, MaxNameLen)
	}
	for _, r := range name {
		if r == ',' || !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidName, name, r)
		}
	}
	return name, nil
}
