package core

// LabelFor returns the spreadsheet-column label for a zero-based creation
// index: 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA".
// Negative indices yield "".
// Complexity: O(k) time where k ≈ log₂₆(idx).
func LabelFor(idx int) string {
	if idx < 0 {
		return ""
	}
	// build letters in reverse order
	var runes []rune
	var i, j int
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
