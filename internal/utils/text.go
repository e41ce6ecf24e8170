package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SnakeToCapitalizedWords turns a column name such as "rental_rate" into a
// label such as "Rental Rate".  Only the first letter of each word changes.
func SnakeToCapitalizedWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
