package token

import (
	"github.com/safesend-network/safesend"
)

// Controller moves fungible tokens held in an external token registry.
//
// The token address identifies the registry contract that manages the
// token. An implementation is expected to return an error describing the
// registry failure when a transfer is rejected, for example because of a
// missing balance or allowance.
type Controller interface {
	// Transfer moves the given amount of the token from the account this
	// module controls to dest. The data payload is forwarded to the
	// registry untouched.
	Transfer(db safesend.KVStore, token safesend.Address, dest safesend.Address, amount uint64, data []byte) error

	// TransferFrom moves the given amount of the token from src to dest,
	// using the allowance src granted to this module. The data payload is
	// forwarded to the registry untouched.
	TransferFrom(db safesend.KVStore, token safesend.Address, src safesend.Address, dest safesend.Address, amount uint64, data []byte) error
}
