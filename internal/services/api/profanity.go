package api

import "strings"

var profaneWords = map[string]struct{}{
	"kerfuffle": {},
	"sharbert":  {},
	"fornax":    {},
}

const profanityMask = "****"

// cleanBody masks profane words. Matching is case-insensitive on whole
// space-separated tokens; words touching punctuation pass through.
func cleanBody(body string) string {
	words := strings.Split(body, " ")
	for i, w := range words {
		if _, ok := profaneWords[strings.ToLower(w)]; ok {
			words[i] = profanityMask
		}
	}
	return strings.Join(words, " ")
}
