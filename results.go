package safesend

// KVPair is a single key/value tag attached to a delivery result. The host
// indexes these so external observers can search the transaction history.
type KVPair struct {
	Key   []byte
	Value []byte
}

// NewTag is a helper to build a tag from string data
func NewTag(key, value string) KVPair {
	return KVPair{
		Key:   []byte(key),
		Value: []byte(value),
	}
}

// CheckResult captures any non-error abci result
// to make sure people use error for error cases
type CheckResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// GasAllocated is the maximum units of work we allow this tx to perform
	GasAllocated int64
}

// DeliverResult captures any non-error result of a successful delivery,
// to make sure people use error for error cases
type DeliverResult struct {
	// Data is a machine-parseable return value, like id of created entity
	Data []byte
	// Log is human-readable informational string
	Log string
	// Tags are emitted strictly after the state mutation they report has
	// been written, so observers never learn about state that was not
	// committed
	Tags []KVPair
	// GasUsed is currently unused field until effects in the host are clear
	GasUsed int64
}
