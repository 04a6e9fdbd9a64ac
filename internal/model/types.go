package model

// Colour is a bettable colour. Enumeration order matters: outcome
// selection breaks stake ties by the first colour in this order.
type Colour string

const (
	ColourRed    Colour = "red"
	ColourViolet Colour = "violet"
	ColourGreen  Colour = "green"
)

// Colours lists all bettable colours in tie-break order.
var Colours = []Colour{ColourRed, ColourViolet, ColourGreen}

func ParseColour(s string) (Colour, error) {
	switch s {
	case string(ColourRed):
		return ColourRed, nil
	case string(ColourViolet):
		return ColourViolet, nil
	case string(ColourGreen):
		return ColourGreen, nil
	default:
		return "", ErrInvalidColour
	}
}

func (c Colour) String() string {
	return string(c)
}

// BetResult is the lifecycle state of a bet. A bet is inserted as
// pending and transitions exactly once to win or loss at settlement.
// Cancelled is reachable only through the admin path.
type BetResult string

const (
	BetPending   BetResult = "pending"
	BetWin       BetResult = "win"
	BetLoss      BetResult = "loss"
	BetCancelled BetResult = "cancelled"
)

func (r BetResult) String() string {
	return string(r)
}

type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeWin        TransactionType = "win"
	TypeLoss       TransactionType = "loss"
)

func (t TransactionType) String() string {
	return string(t)
}

// TransactionStatus transitions are monotonic: pending may become
// completed or failed, completed and failed are terminal.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalCompleted WithdrawalStatus = "completed"
	WithdrawalFailed    WithdrawalStatus = "failed"
)

type RoundPhase string

const (
	// PhaseOpen accepts new bets.
	PhaseOpen RoundPhase = "open"
	// PhaseClosing is the buffer before the round ends; intake rejects.
	PhaseClosing RoundPhase = "closing"
)
