package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"

	"golang.org/x/term"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// errNoTerminal is returned when --prompt-key is used without a terminal.
var errNoTerminal = errors.New("--prompt-key needs an interactive terminal on stdin")

// promptKey reads a key from the terminal without echoing it.
func promptKey(in io.Reader, errOut io.Writer) (string, error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return "", errNoTerminal
	}

	fmt.Fprint(errOut, "Key: ")
	key, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(errOut)
	if err != nil {
		return "", fmt.Errorf("reading key: %w", err)
	}
	return string(key), nil
}

// foldText decomposes text and drops combining marks, so accented letters
// reach the ciphers as their ASCII base letter.
func foldText(text string) (string, error) {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, text)
	return out, err
}

// countNonASCIILetters counts letters outside A-Z and a-z.
func countNonASCIILetters(text string) int {
	n := 0
	for _, r := range text {
		if r > unicode.MaxASCII && unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
