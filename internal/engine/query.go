package engine

import "unicode/utf8"

// Query is the search text being edited, with a cursor counted in characters.
// The zero value is an empty query with the cursor at 0.
type Query struct {
	text   string
	cursor int
}

func (q *Query) String() string { return q.text }

// Cursor returns the cursor position in characters, in [0, Len()].
func (q *Query) Cursor() int { return q.cursor }

// Len returns the number of characters in the query.
func (q *Query) Len() int { return utf8.RuneCountInString(q.text) }

// Insert puts r before the cursor and moves the cursor past it.
func (q *Query) Insert(r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	i := q.byteIndex(q.cursor)
	q.text = q.text[:i] + string(r) + q.text[i:]
	q.cursor++
}

// Delete removes the character before the cursor.
func (q *Query) Delete() {
	if q.cursor == 0 {
		return
	}
	from := q.byteIndex(q.cursor - 1)
	to := q.byteIndex(q.cursor)
	q.text = q.text[:from] + q.text[to:]
	q.cursor--
}

func (q *Query) Left() {
	if q.cursor > 0 {
		q.cursor--
	}
}

func (q *Query) Right() {
	if q.cursor < q.Len() {
		q.cursor++
	}
}

// Clear empties the buffer and resets the cursor.
func (q *Query) Clear() {
	q.text = ""
	q.cursor = 0
}

// byteIndex maps a character index to its byte offset in text. Indexes past
// the end map to len(text).
func (q *Query) byteIndex(ci int) int {
	n := 0
	for i := range q.text {
		if n == ci {
			return i
		}
		n++
	}
	return len(q.text)
}
