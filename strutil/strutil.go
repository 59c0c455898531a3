// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package strutil provides simple, unicode aware, string helpers.
package strutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cloudeng.io/text/textutil"
)

// IsPalindrome returns true if s reads the same forwards and backwards
// ignoring case and any character that is not a letter or digit.
// The empty string is a palindrome.
func IsPalindrome(s string) bool {
	normalized := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			normalized = append(normalized, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(normalized)-1; i < j; i, j = i+1, j-1 {
		if normalized[i] != normalized[j] {
			return false
		}
	}
	return true
}

// CountChar returns the number of occurrences of target in s.
func CountChar(s string, target rune) int {
	n := 0
	for _, r := range s {
		if r == target {
			n++
		}
	}
	return n
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	return textutil.ReverseString(s)
}

// TitleCase upper cases the first letter of each whitespace separated word
// and lower cases the remainder. Words are joined by a single space.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// RemoveWhitespace returns s with all unicode whitespace removed.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// WordCount returns the number of whitespace separated words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// IsAlphabetic returns true if s is non-empty and contains only letters.
func IsAlphabetic(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
