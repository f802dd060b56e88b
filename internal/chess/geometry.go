package chess

// Direction is one of the eight compass steps on the board.
// The four orthogonal directions come first, then the four diagonals.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	UpLeft
	UpRight
	DownLeft
	DownRight
	NumDirections
)

// Direction ranges used by the sliding pieces.
const (
	FirstOrthogonal = Left
	LastOrthogonal  = Down
	FirstDiagonal   = UpLeft
	LastDiagonal    = DownRight
)

// fileRowSteps holds the (file, row) unit step of each direction.
var fileRowSteps = [NumDirections][2]int{
	Left:      {-1, 0},
	Right:     {1, 0},
	Up:        {0, -1},
	Down:      {0, 1},
	UpLeft:    {-1, -1},
	UpRight:   {1, -1},
	DownLeft:  {-1, 1},
	DownRight: {1, 1},
}

// Offset returns the square-index delta of one step in the direction.
func (d Direction) Offset() Square {
	step := fileRowSteps[d]
	return Square(step[1]*BoardSize + step[0])
}

// IsDiagonal reports whether d is one of the four diagonal steps.
func (d Direction) IsDiagonal() bool {
	return d >= FirstDiagonal && d <= LastDiagonal
}

// SquaresToEdge[sq][dir] counts the on-board squares along the ray from sq in
// direction dir, sq itself included. A piece can therefore step
// SquaresToEdge[sq][dir]-1 times before leaving the board.
var SquaresToEdge [NumSquares][NumDirections]int

func init() {
	SquaresToEdge = computeSquaresToEdge()
}

func computeSquaresToEdge() [NumSquares][NumDirections]int {
	var table [NumSquares][NumDirections]int
	for sq := Square(0); sq < NumSquares; sq++ {
		for dir := Direction(0); dir < NumDirections; dir++ {
			step := fileRowSteps[dir]
			n := 0
			for file, row := sq.File(), sq.Row(); file >= 0 && file < BoardSize && row >= 0 && row < BoardSize; file, row = file+step[0], row+step[1] {
				n++
			}
			table[sq][dir] = n
		}
	}
	return table
}
