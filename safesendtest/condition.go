package safesendtest

import (
	"crypto/rand"

	"github.com/safesend-network/safesend"
)

// NewCondition returns a random condition. It can be used whenever a unique
// identity is needed, for example as a transaction signer.
func NewCondition() safesend.Condition {
	data := make([]byte, 32)
	if _, err := rand.Read(data); err != nil {
		panic(err)
	}
	return safesend.NewCondition("sigs", "ed25519", data)
}

// NewAddress returns a random address.
func NewAddress() safesend.Address {
	return NewCondition().Address()
}
