package bank

import "errors"

// ErrInvalidMove is returned by ApplyMove when the move is not a member of
// LegalMoves(state).
var ErrInvalidMove = errors.New("bank: invalid move")

// ErrNoCardsToDraw is returned by DrawFromHand when both hand and waste are
// empty, so there is nothing left to recycle or draw.
var ErrNoCardsToDraw = errors.New("bank: no cards to draw")
