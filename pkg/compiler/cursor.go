package compiler

// Cursor tracks a read position over an immutable source text. Point only
// ever increases; Row and Col follow from the bytes consumed so far.
type Cursor struct {
	src   string
	Row   int // current 1-based line
	Col   int // current 1-based column
	Point int // current 0-based byte offset
}

func newCursor(src string) Cursor {
	return Cursor{src: src, Row: 1, Col: 1}
}

// peek returns the byte at the current position without advancing. At or
// past the end of the source it returns the 0 sentinel.
func (cu *Cursor) peek() byte {
	if cu.Point >= len(cu.src) {
		return 0
	}
	return cu.src[cu.Point]
}

// advance consumes one byte, updating line/column bookkeeping. Calling it at
// the end of the source is a no-op.
func (cu *Cursor) advance() {
	if cu.Point >= len(cu.src) {
		return
	}
	if cu.src[cu.Point] == '\n' {
		cu.Row++
		cu.Col = 1
	} else {
		cu.Col++
	}
	cu.Point++
}

func (cu *Cursor) atEnd() bool {
	return cu.peek() == 0
}
