package engine

import "strings"

// ShortcutTable expands short typed prefixes into full literal text,
// independent of the tone/mark transformer (e.g. "vn" -> "Việt Nam").
// Lookup is case-insensitive on the key but preserves the expansion's own
// casing.
type ShortcutTable struct {
	entries map[string]string
}

// NewShortcutTable returns an empty table.
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{entries: make(map[string]string)}
}

// Add registers key -> expansion. It returns false and leaves the table
// unchanged if key is already registered, since silently overwriting a
// shortcut would surprise whichever caller added it first.
func (t *ShortcutTable) Add(key, expansion string) bool {
	k := strings.ToLower(key)
	if _, exists := t.entries[k]; exists {
		return false
	}
	t.entries[k] = expansion
	return true
}

// Remove deletes key, reporting whether it was present.
func (t *ShortcutTable) Remove(key string) bool {
	k := strings.ToLower(key)
	if _, exists := t.entries[k]; !exists {
		return false
	}
	delete(t.entries, k)
	return true
}

// Lookup returns the expansion for word (case-insensitive exact match) and
// whether one exists.
func (t *ShortcutTable) Lookup(word string) (string, bool) {
	v, ok := t.entries[strings.ToLower(word)]
	return v, ok
}

// LongestSuffixMatch returns the longest registered key that matches
// (case-insensitively) a trailing run of runes in s, along with its
// expansion. Engine does not call it: its word-boundary expansion uses
// Lookup on the whole rendered word.
func (t *ShortcutTable) LongestSuffixMatch(s string) (key, expansion string, ok bool) {
	runes := []rune(s)
	bestLen := 0
	for k, v := range t.entries {
		kr := []rune(k)
		if len(kr) > len(runes) || len(kr) <= bestLen {
			continue
		}
		if strings.EqualFold(string(runes[len(runes)-len(kr):]), k) {
			bestLen = len(kr)
			key, expansion, ok = k, v, true
		}
	}
	return key, expansion, ok
}
