package model

import "strings"

// Item is a single shopping-list entry: one line of text.
type Item = string

// Normalize strips surrounding whitespace and line terminators.
// An empty result means the text is not a valid Item.
func Normalize(text string) Item {
	return strings.TrimSpace(text)
}
