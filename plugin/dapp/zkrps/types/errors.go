package types

import "errors"

var (
	// precondition violations
	ErrGameExists        = errors.New("a pending game with this commitment hash already exists")
	ErrGameSlotsFull     = errors.New("the game already has two funded parties")
	ErrGameResolved      = errors.New("the game is already resolved, no further transition is allowed")
	ErrTakerNotJoined    = errors.New("no taker has funded this game yet")
	ErrTakerMoveSet      = errors.New("the taker move has already been registered")
	ErrTakerMoveUnset    = errors.New("the taker has not registered a move yet")
	ErrMatchStatus       = errors.New("the match is not in the required status for this transition")
	ErrNotYourGame       = errors.New("this address is not a party of the game")
	ErrSelfMatch         = errors.New("maker and taker of a game must be different addresses")
	ErrZeroContribution  = errors.New("realized contribution amount must be positive")
	ErrInvalidMove       = errors.New("move must be rock, paper or scissors")
	ErrStakeOutOfRange   = errors.New("contribution amount is out of the configured stake range")
	ErrAssetMismatch     = errors.New("taker contribution must use the maker's pool and asset")

	// binding / proof
	ErrCommitMismatch = errors.New("revealed move and salt do not hash to the stored commitment")
	ErrProofRejected  = errors.New("the verifier declined the supplied proof")

	// deadlines
	ErrRevealDeadlinePassed  = errors.New("the reveal deadline has passed")
	ErrRevealDeadlineNotOver = errors.New("the reveal deadline has not passed yet")
	ErrRefundTimeoutNotOver  = errors.New("the refund timeout has not elapsed yet")

	// attribution
	ErrOriginMissing   = errors.New("exchange callback carries no originating party address")
	ErrOriginInvalid   = errors.New("originating party address is malformed")
	ErrRelayNotAllowed = errors.New("signer is not an authorized sender identity relay")

	// link table
	ErrLinkConflict = errors.New("commitment hash or match id is already linked to a different partner")
	ErrLinkMissing  = errors.New("no link exists between this commitment hash and any match")
)
