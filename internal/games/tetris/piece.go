package tetris

// Shape is a piece occupancy matrix, row-major, top row first.
type Shape [][]bool

// Kind indexes the seven standard tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds is the number of tetromino kinds.
const Kinds = 7

var shapes = [Kinds][]string{
	KindI: {"XXXX"},
	KindO: {"XX", "XX"},
	KindT: {".X.", "XXX"},
	KindS: {".XX", "XX."},
	KindZ: {"XX.", ".XX"},
	KindJ: {"X..", "XXX"},
	KindL: {"..X", "XXX"},
}

// ShapeOf returns a fresh copy of the spawn orientation of k.
func ShapeOf(k Kind) Shape {
	rows := shapes[k]
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, ch := range row {
			s[y][x] = ch == 'X'
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Rotate returns the shape turned 90 degrees clockwise: transpose,
// then reverse each row.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	r := make(Shape, w)
	for i := range r {
		r[i] = make([]bool, h)
		for j := range r[i] {
			r[i][j] = s[h-1-j][i]
		}
	}
	return r
}

// Piece is the falling tetromino and its board origin.
type Piece struct {
	Kind  Kind  `json:"kind"`
	Shape Shape `json:"shape"`
	X     int   `json:"x"`
	Y     int   `json:"y"`
}

// Cells calls fn for every occupied board cell of the piece.
func (p Piece) Cells(fn func(x, y int)) {
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}

// Moved returns a copy of the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
