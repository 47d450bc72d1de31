// Package editor holds the single-line text buffer used while typing a task
// title or a project name.
package editor

type Direction int

const (
	Left Direction = iota
	Right
)

// Editor is a rune buffer with an insertion caret. The caret always satisfies
// 0 <= caret <= len(buffer).
type Editor struct {
	buf   []rune
	caret int
}

func New() *Editor {
	return &Editor{}
}

func (e *Editor) Insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.caret+1:], e.buf[e.caret:])
	e.buf[e.caret] = r
	e.caret++
}

// Delete removes the rune before the caret, like backspace.
func (e *Editor) Delete() {
	if e.caret == 0 {
		return
	}
	e.buf = append(e.buf[:e.caret-1], e.buf[e.caret:]...)
	e.caret--
}

func (e *Editor) MoveCursor(dir Direction) {
	switch dir {
	case Left:
		if e.caret > 0 {
			e.caret--
		}
	case Right:
		if e.caret < len(e.buf) {
			e.caret++
		}
	}
}

func (e *Editor) Home() { e.caret = 0 }

func (e *Editor) End() { e.caret = len(e.buf) }

// SetString loads text into the buffer and parks the caret at the end.
func (e *Editor) SetString(s string) {
	e.buf = []rune(s)
	e.caret = len(e.buf)
}

// Validate returns the buffer contents and resets the editor.
func (e *Editor) Validate() string {
	s := string(e.buf)
	e.Clear()
	return s
}

func (e *Editor) Clear() {
	e.buf = nil
	e.caret = 0
}

func (e *Editor) Value() string { return string(e.buf) }

func (e *Editor) Caret() int { return e.caret }

func (e *Editor) Len() int { return len(e.buf) }

// Split returns the text on each side of the caret.
func (e *Editor) Split() (before, after string) {
	return string(e.buf[:e.caret]), string(e.buf[e.caret:])
}
