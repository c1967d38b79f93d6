package board

import "github.com/Phlosioneer/polyomino-generator/polyomino"

// Limits caps how many pieces of each small size class a tiling may use. A
// negative limit disables that cap.
type Limits struct {
	// MaxTiny bounds pieces of size 1 or 2.
	MaxTiny int
	// MaxTriples bounds pieces of size 3.
	MaxTriples int
}

// Unlimited places no budget on any size class.
var Unlimited = Limits{MaxTiny: -1, MaxTriples: -1}

// Restricted wraps a board with the piece budgets. Values are branched by
// copy, exactly like the board itself.
type Restricted struct {
	board     *Board
	limits    Limits
	tinyCount int
	tripleCnt int
}

// NewRestricted creates an empty restricted board.
func NewRestricted(width, height int, limits Limits) *Restricted {
	return &Restricted{board: New(width, height), limits: limits}
}

// Board exposes the underlying placement grid.
func (r *Restricted) Board() *Board {
	return r.board
}

// PlaceClone attempts a budget-checked placement on a copy. A shape whose
// size class is already at its cap is rejected before the board is touched.
// Returns nil on any rejection; the receiver is never modified.
func (r *Restricted) PlaceClone(p *polyomino.Polyomino) *Restricted {
	isTiny := p.Size() == 1 || p.Size() == 2
	isTriple := p.Size() == 3

	if isTiny && r.limits.MaxTiny >= 0 && r.tinyCount >= r.limits.MaxTiny {
		return nil
	}
	if isTriple && r.limits.MaxTriples >= 0 && r.tripleCnt >= r.limits.MaxTriples {
		return nil
	}

	inner := r.board.PlaceClone(p)
	if inner == nil {
		return nil
	}

	next := &Restricted{
		board:     inner,
		limits:    r.limits,
		tinyCount: r.tinyCount,
		tripleCnt: r.tripleCnt,
	}
	if isTiny {
		next.tinyCount++
	} else if isTriple {
		next.tripleCnt++
	}
	return next
}
