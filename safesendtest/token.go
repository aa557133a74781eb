package safesendtest

import (
	"github.com/safesend-network/safesend"
)

// TokenMove records a single transfer requested on the TokenController mock.
type TokenMove struct {
	Token  safesend.Address
	Src    safesend.Address
	Dest   safesend.Address
	Amount uint64
	Data   []byte
}

// TokenController is a mock implementing the token.Controller interface.
// It records every requested transfer and can be configured to fail.
type TokenController struct {
	// Err if set is returned by every transfer call.
	Err error

	// Moves are all transfers requested so far, in order. For Transfer
	// calls the Src field is nil.
	Moves []TokenMove
}

func (c *TokenController) Transfer(db safesend.KVStore, token safesend.Address, dest safesend.Address, amount uint64, data []byte) error {
	if c.Err != nil {
		return c.Err
	}
	c.Moves = append(c.Moves, TokenMove{Token: token, Dest: dest, Amount: amount, Data: data})
	return nil
}

func (c *TokenController) TransferFrom(db safesend.KVStore, token safesend.Address, src safesend.Address, dest safesend.Address, amount uint64, data []byte) error {
	if c.Err != nil {
		return c.Err
	}
	c.Moves = append(c.Moves, TokenMove{Token: token, Src: src, Dest: dest, Amount: amount, Data: data})
	return nil
}
