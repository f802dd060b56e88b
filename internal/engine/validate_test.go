package engine

import (
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{"initial position", InitialFEN, nil},
		{"kiwipete", testutil.Kiwipete, nil},
		{"side to move in check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", nil},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", chesserrors.ErrNoKing},
		{"no black king", "8/p7/8/8/8/8/8/K7 w - - 0 1", chesserrors.ErrNoKing},
		{"empty board", "8/8/8/8/8/8/8/8 w - - 0 1", chesserrors.ErrNoKing},
		{"two white kings", "4k3/8/8/8/8/8/8/K3K3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"pawn on last rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", chesserrors.ErrInvalidFEN},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/p3K3 b - - 0 1", chesserrors.ErrInvalidFEN},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1", chesserrors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePosition(mustFEN(t, tt.fen))
			if tt.want == nil {
				testutil.AssertNoError(t, err)
				return
			}
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}
