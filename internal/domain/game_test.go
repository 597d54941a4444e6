package domain

import (
	"testing"

	"tictactoe_webapp/internal/board"
)

func TestSymbolAdversary(t *testing.T) {
	if got := SymbolX.Adversary(); got != SymbolO {
		t.Fatalf("SymbolX.Adversary() = %q; want %q", got, SymbolO)
	}
	if got := SymbolO.Adversary(); got != SymbolX {
		t.Fatalf("SymbolO.Adversary() = %q; want %q", got, SymbolX)
	}
	if got := SymbolX.Adversary().Adversary(); got != SymbolX {
		t.Fatalf("double Adversary() = %q; want %q", got, SymbolX)
	}
}

func TestComputeView(t *testing.T) {
	px := &Player{ID: 1, GameName: "foo", Symbol: SymbolX}
	po := &Player{ID: 2, GameName: "foo", Symbol: SymbolO}

	cases := []struct {
		name    string
		game    Game
		player  *Player
		want    ViewState
		wantSeq board.Line
	}{
		{
			name:   "unstarted is wait even for x",
			game:   Game{Name: "foo", Status: StatusUnstarted, Turn: SymbolX, Board: board.EmptyBoard},
			player: px,
			want:   ViewWait,
		},
		{
			name:   "started, my turn",
			game:   Game{Name: "foo", Status: StatusStarted, Turn: SymbolX, Board: board.EmptyBoard},
			player: px,
			want:   ViewTurn,
		},
		{
			name:   "started, adversary's turn",
			game:   Game{Name: "foo", Status: StatusStarted, Turn: SymbolX, Board: board.EmptyBoard},
			player: po,
			want:   ViewWait,
		},
		{
			name:    "winner sees win",
			game:    Game{Name: "foo", Status: StatusFinished, Turn: SymbolO, Board: "xxxoo____"},
			player:  px,
			want:    ViewWin,
			wantSeq: board.Row1,
		},
		{
			name:    "loser sees lose",
			game:    Game{Name: "foo", Status: StatusFinished, Turn: SymbolO, Board: "xxxoo____"},
			player:  po,
			want:    ViewLose,
			wantSeq: board.Row1,
		},
		{
			name:   "full board with no line is a tie",
			game:   Game{Name: "foo", Status: StatusFinished, Turn: SymbolX, Board: "xxoooxxxo"},
			player: px,
			want:   ViewTie,
		},
		{
			// Terminal facts beat turn facts: turn still points at x,
			// but the board already holds x's line.
			name:    "win reported even when turn looks mine",
			game:    Game{Name: "foo", Status: StatusStarted, Turn: SymbolX, Board: "xxx_o_o__"},
			player:  px,
			want:    ViewWin,
			wantSeq: board.Row1,
		},
	}

	for _, tc := range cases {
		v := ComputeView(&tc.game, tc.player)
		if v.State != tc.want {
			t.Fatalf("%s: state = %q; want %q", tc.name, v.State, tc.want)
		}
		if v.WinningSeq != tc.wantSeq {
			t.Fatalf("%s: winningSeq = %q; want %q", tc.name, v.WinningSeq, tc.wantSeq)
		}
		if v.Board != tc.game.Board {
			t.Fatalf("%s: board = %q; want %q", tc.name, v.Board, tc.game.Board)
		}
	}
}

func TestComputeViewIdempotent(t *testing.T) {
	g := Game{Name: "foo", Status: StatusStarted, Turn: SymbolO, Board: "x________"}
	p := &Player{ID: 1, GameName: "foo", Symbol: SymbolX}

	first := ComputeView(&g, p)
	for i := 0; i < 5; i++ {
		if v := ComputeView(&g, p); v != first {
			t.Fatalf("view changed between polls: %+v vs %+v", v, first)
		}
	}
}
