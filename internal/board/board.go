package board

// Cell marks as stored in the games table and sent on the wire.
const (
	Empty byte = '_'
	MarkX byte = 'x'
	MarkO byte = 'o'
)

// Size is the number of cells on the board.
const Size = 9

// EmptyBoard is the board every new game starts with.
const EmptyBoard = "_________"

// Line names one of the 8 winning triples (3 rows, 3 columns, 2 diagonals).
type Line string

const (
	None  Line = ""
	Row1  Line = "ROW1"
	Row2  Line = "ROW2"
	Row3  Line = "ROW3"
	Col1  Line = "COL1"
	Col2  Line = "COL2"
	Col3  Line = "COL3"
	Diag1 Line = "DIAG1"
	Diag2 Line = "DIAG2"
)

// lines holds the triples in scan order: rows before columns before diagonals.
var lines = []struct {
	name    Line
	a, b, c int
}{
	{Row1, 0, 1, 2},
	{Row2, 3, 4, 5},
	{Row3, 6, 7, 8},
	{Col1, 0, 3, 6},
	{Col2, 1, 4, 7},
	{Col3, 2, 5, 8},
	{Diag1, 0, 4, 8},
	{Diag2, 6, 4, 2},
}

// EvaluateLine returns the first line whose three cells all hold mark,
// or None if mark has no completed line on b.
func EvaluateLine(mark byte, b string) Line {
	for _, l := range lines {
		if b[l.a] == mark && b[l.b] == mark && b[l.c] == mark {
			return l.name
		}
	}
	return None
}

// IsFull reports whether no cell of b is empty.
func IsFull(b string) bool {
	for i := 0; i < len(b); i++ {
		if b[i] == Empty {
			return false
		}
	}
	return true
}

// IsLegalPlacement reports whether position is on the board and the cell is
// empty. An illegal placement is a normal negative result, never an error.
func IsLegalPlacement(b string, position int) bool {
	if position < 0 || position >= Size {
		return false
	}
	return b[position] == Empty
}

// Place returns a copy of b with mark written at position. The caller must
// have checked IsLegalPlacement first.
func Place(b string, position int, mark byte) string {
	return b[:position] + string(mark) + b[position+1:]
}
