package domain

// Coin is the unit attached to a transaction. Purity is decided outside this
// module; the badge is only ever set by the validator.
type Coin struct {
	pure  bool
	badge string
}

// NewCoin returns an unbadged coin with the given purity.
func NewCoin(pure bool) Coin {
	return Coin{pure: pure}
}

func (c Coin) IsPure() bool {
	return c.pure
}

func (c Coin) Badge() string {
	return c.badge
}

func (c Coin) HasBadge() bool {
	return c.badge != ""
}

// WithBadge returns a copy of the coin carrying the badge symbol.
func (c Coin) WithBadge(symbol string) Coin {
	c.badge = symbol
	return c
}

// Transaction is a raw record handed over by a producer. The core treats it as
// read-only except for the coin badge.
type Transaction struct {
	Source string
	Value  int64 // smallest unit
	Coin   Coin
}

// NewTransaction builds a transaction with an unbadged coin.
func NewTransaction(source string, value int64, pure bool) Transaction {
	return Transaction{
		Source: source,
		Value:  value,
		Coin:   NewCoin(pure),
	}
}
