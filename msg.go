package safesend

import (
	"reflect"

	"github.com/safesend-network/safesend/errors"
)

// LoadMsg extracts the message from given transaction, ensures the result is
// valid and of the expected type and loads it into given destination
// structure.
// Destination must be a non-nil pointer to a message that the transaction
// is expected to carry.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dt := reflect.TypeOf(destination)
	if dt.Kind() != reflect.Ptr {
		return errors.Wrap(errors.ErrType, "destination must be a pointer")
	}
	mt := reflect.TypeOf(msg)
	if !mt.AssignableTo(dt) {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}

	reflect.ValueOf(destination).Elem().Set(reflect.ValueOf(msg).Elem())
	return nil
}
