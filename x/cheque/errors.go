package cheque

import (
	"github.com/safesend-network/safesend/errors"
)

var (
	// ErrIncorrectFee is returned when the native payment attached to a
	// cheque creation does not match the required value exactly.
	ErrIncorrectFee = errors.Register(1010, "incorrect fee")

	// ErrRecordsLimit is returned when the cheque id space is exhausted.
	ErrRecordsLimit = errors.Register(1011, "records limit reached")
)
