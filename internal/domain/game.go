package domain

import "tictactoe_webapp/internal/board"

// Symbol identifies one of the two marks a player can own.
type Symbol string

const (
	SymbolX Symbol = "x"
	SymbolO Symbol = "o"
)

// Adversary returns the opposite symbol. The symbol domain is closed at two
// values, so this is a two-case lookup rather than a map.
func (s Symbol) Adversary() Symbol {
	if s == SymbolX {
		return SymbolO
	}
	return SymbolX
}

// Mark returns the board cell byte for the symbol.
func (s Symbol) Mark() byte {
	return s[0]
}

// GameStatus - lifecycle state of a game. Transitions are monotonic:
// UNSTARTED -> STARTED -> FINISHED, never back.
type GameStatus string

const (
	StatusUnstarted GameStatus = "UNSTARTED"
	StatusStarted   GameStatus = "STARTED"
	StatusFinished  GameStatus = "FINISHED"
)

// Game is one session row. Name is the primary key. Turn is meaningful only
// while Status is STARTED. Board is always exactly 9 cells of '_', 'x', 'o'.
type Game struct {
	Name   string     `db:"name" json:"name"`
	Status GameStatus `db:"status" json:"state"`
	Turn   Symbol     `db:"turn" json:"turn"`
	Board  string     `db:"board" json:"board"`
}

// Player binds a server-issued id to a game and a fixed symbol. Rows are
// never mutated after insert; they are deleted only on a full reset.
type Player struct {
	ID       int64  `db:"id" json:"playerId"`
	GameName string `db:"game_name" json:"gameName"`
	Symbol   Symbol `db:"symbol" json:"symbol"`
}

// ViewState is what a polling player is told about their game.
type ViewState string

const (
	ViewWait ViewState = "WAIT"
	ViewTurn ViewState = "TURN"
	ViewWin  ViewState = "WIN"
	ViewLose ViewState = "LOSE"
	ViewTie  ViewState = "TIE"
)

// View is the answer to a state query. Computing it never mutates anything,
// so polling the same game repeatedly returns identical views.
type View struct {
	State      ViewState
	Board      string
	WinningSeq board.Line
	Message    string
}

// ComputeView derives a player's view of g. Terminal facts take precedence
// over turn facts: a finished board is reported as WIN/LOSE/TIE even when it
// would degenerately also look like "my turn".
func ComputeView(g *Game, p *Player) View {
	v := View{Board: g.Board}

	if g.Status == StatusUnstarted {
		v.State = ViewWait
		v.Message = "Game has not started: " + g.Name
		return v
	}

	if seq := board.EvaluateLine(p.Symbol.Mark(), g.Board); seq != board.None {
		v.State = ViewWin
		v.WinningSeq = seq
		return v
	}

	if seq := board.EvaluateLine(p.Symbol.Adversary().Mark(), g.Board); seq != board.None {
		v.State = ViewLose
		v.WinningSeq = seq
		return v
	}

	if board.IsFull(g.Board) {
		v.State = ViewTie
		return v
	}

	if g.Turn == p.Symbol {
		v.State = ViewTurn
		return v
	}

	v.State = ViewWait
	v.Message = "Adversary's turn"
	return v
}
