package cheque

import (
	"testing"

	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/safesendtest"
	"github.com/safesend-network/safesend/safesendtest/assert"
)

func TestMsgPath(t *testing.T) {
	assert.Equal(t, "cheque/create", (&CreateChequeMsg{}).Path())
	assert.Equal(t, "cheque/cancel", (&CancelChequeMsg{}).Path())
	assert.Equal(t, "cheque/collect", (&CollectChequeMsg{}).Path())
	assert.Equal(t, "cheque/update_fee", (&UpdateFeeMsg{}).Path())
}

func TestCreateChequeMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg      CreateChequeMsg
		wantErrs map[string]*errors.Error
	}{
		"valid native": {
			msg: CreateChequeMsg{
				To:      safesendtest.NewAddress(),
				Amount:  100,
				Payment: 105,
			},
			wantErrs: map[string]*errors.Error{
				"To":     nil,
				"Amount": nil,
				"Token":  nil,
			},
		},
		"valid token": {
			msg: CreateChequeMsg{
				To:      safesendtest.NewAddress(),
				Amount:  100,
				Token:   safesendtest.NewAddress(),
				Payment: 5,
			},
			wantErrs: map[string]*errors.Error{
				"Token": nil,
			},
		},
		"missing recipient": {
			msg: CreateChequeMsg{
				Amount:  100,
				Payment: 105,
			},
			wantErrs: map[string]*errors.Error{
				"To": errors.ErrEmpty,
			},
		},
		"zero amount": {
			msg: CreateChequeMsg{
				To:      safesendtest.NewAddress(),
				Payment: 5,
			},
			wantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"malformed token address": {
			msg: CreateChequeMsg{
				To:      safesendtest.NewAddress(),
				Amount:  100,
				Token:   []byte("x"),
				Payment: 5,
			},
			wantErrs: map[string]*errors.Error{
				"Token": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestResolveMsgsValidate(t *testing.T) {
	// Any id can be requested, including one that was never assigned.
	// That a cheque exists is a state check, not a message check.
	assert.Nil(t, (&CancelChequeMsg{ChequeId: 0}).Validate())
	assert.Nil(t, (&CollectChequeMsg{ChequeId: 123}).Validate())
	assert.Nil(t, (&UpdateFeeMsg{Fee: 0}).Validate())
}
