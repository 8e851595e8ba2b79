package ips

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'ђ': "đ",
	'е': "e", 'ж': "ž", 'з': "z", 'и': "i", 'ј': "j", 'к': "k",
	'л': "l", 'љ': "lj", 'м': "m", 'н': "n", 'њ': "nj", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'ћ': "ć", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "c", 'ч': "č", 'џ': "dž", 'ш': "š",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Ђ': "Đ",
	'Е': "E", 'Ж': "Ž", 'З': "Z", 'И': "I", 'Ј': "J", 'К': "K",
	'Л': "L", 'Љ': "LJ", 'М': "M", 'Н': "N", 'Њ': "NJ", 'О': "O",
	'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'Ћ': "Ć", 'У': "U",
	'Ф': "F", 'Х': "H", 'Ц': "C", 'Ч': "Č", 'Џ': "DŽ", 'Ш': "Š",
}

// Title-case forms used when the capital digraph starts a capitalized word.
var titleDigraphs = map[rune]string{
	'Љ': "Lj",
	'Њ': "Nj",
	'Џ': "Dž",
}

// Transliterate maps Serbian Cyrillic letters to their Latin equivalents.
// Everything else is left as is.
func Transliterate(text string) string {
	if text == "" {
		return ""
	}

	out, _, err := transform.String(NewTransliterator(), text)
	if err != nil {
		// Unreachable: transliterator reports no errors of its own.
		return text
	}

	return out
}

// NewTransliterator returns a stateful transform.Transformer that performs
// the same mapping as Transliterate. It must not be shared between goroutines.
func NewTransliterator() transform.Transformer {
	return &transliterator{}
}

type transliterator struct {
	prevUpper bool
}

func (t *transliterator) Reset() {
	t.prevUpper = false
}

func (t *transliterator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		var repl string

		if title, ok := titleDigraphs[r]; ok {
			next, nextSize := utf8.DecodeRune(src[nSrc+size:])
			if nextSize == 0 && !atEOF {
				// Casing depends on the following letter.
				return nDst, nSrc, transform.ErrShortSrc
			}

			if nextSize > 0 && next == utf8.RuneError && !atEOF && !utf8.FullRune(src[nSrc+size:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}

			repl = title
			if t.prevUpper || (nextSize > 0 && unicode.IsUpper(next)) {
				repl = cyrillicToLatin[r]
			}
		} else if v, ok := cyrillicToLatin[r]; ok {
			repl = v
		}

		if repl == "" {
			// Untouched input, including invalid bytes.
			if len(dst)-nDst < size {
				return nDst, nSrc, transform.ErrShortDst
			}

			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		} else {
			if len(dst)-nDst < len(repl) {
				return nDst, nSrc, transform.ErrShortDst
			}

			nDst += copy(dst[nDst:], repl)
		}

		t.prevUpper = unicode.IsUpper(r)
		nSrc += size
	}

	return nDst, nSrc, nil
}

// truncate cuts s to at most n characters.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0

	for pos := range s {
		if i == n {
			return s[:pos]
		}

		i++
	}

	return s
}
