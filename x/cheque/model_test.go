package cheque

import (
	"testing"

	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/safesendtest"
	"github.com/safesend-network/safesend/safesendtest/assert"
)

func TestChequeValidate(t *testing.T) {
	from := safesendtest.NewAddress()
	to := safesendtest.NewAddress()
	registry := safesendtest.NewAddress()

	cases := map[string]struct {
		model    Cheque
		wantErrs map[string]*errors.Error
	}{
		"valid native cheque": {
			model: Cheque{
				From:   from,
				To:     to,
				Amount: 100,
				Fee:    5,
				Status: Pending,
			},
			wantErrs: map[string]*errors.Error{
				"From":   nil,
				"To":     nil,
				"Amount": nil,
				"Token":  nil,
				"Status": nil,
			},
		},
		"valid token cheque": {
			model: Cheque{
				From:   from,
				To:     to,
				Amount: 100,
				Token:  registry,
				Status: Collected,
			},
			wantErrs: map[string]*errors.Error{
				"Token":  nil,
				"Status": nil,
			},
		},
		"missing addresses": {
			model: Cheque{
				Amount: 100,
				Status: Pending,
			},
			wantErrs: map[string]*errors.Error{
				"From": errors.ErrEmpty,
			},
		},
		"same sender and recipient": {
			model: Cheque{
				From:   from,
				To:     from,
				Amount: 100,
				Status: Pending,
			},
			wantErrs: map[string]*errors.Error{
				"To": errors.ErrInput,
			},
		},
		"zero amount": {
			model: Cheque{
				From:   from,
				To:     to,
				Status: Pending,
			},
			wantErrs: map[string]*errors.Error{
				"Amount": errors.ErrAmount,
			},
		},
		"malformed token address": {
			model: Cheque{
				From:   from,
				To:     to,
				Amount: 100,
				Token:  []byte("too short"),
				Status: Pending,
			},
			wantErrs: map[string]*errors.Error{
				"Token": errors.ErrInput,
			},
		},
		"invalid status": {
			model: Cheque{
				From:   from,
				To:     to,
				Amount: 100,
				Status: Invalid,
			},
			wantErrs: map[string]*errors.Error{
				"Status": errors.ErrState,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.model.Validate()
			for field, wantErr := range tc.wantErrs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestChequeCopy(t *testing.T) {
	c := Cheque{
		From:   safesendtest.NewAddress(),
		To:     safesendtest.NewAddress(),
		Amount: 100,
		Fee:    5,
		Status: Pending,
	}
	cpy := c.Copy().(*Cheque)
	assert.Equal(t, &c, cpy)

	// Mutating the copy must not leak into the original.
	cpy.From[0]++
	cpy.Status = Collected
	assert.Equal(t, Pending, c.Status)
	if c.From.Equals(cpy.From) {
		t.Fatal("copy shares the sender address")
	}
}

func TestConfigurationValidate(t *testing.T) {
	cases := map[string]struct {
		conf    Configuration
		wantErr *errors.Error
	}{
		"valid": {
			conf: Configuration{Admin: safesendtest.NewAddress(), Fee: 5},
		},
		"zero fee is allowed": {
			conf: Configuration{Admin: safesendtest.NewAddress()},
		},
		"missing admin": {
			conf:    Configuration{Fee: 5},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.conf.Validate()
			assert.FieldError(t, err, "Admin", tc.wantErr)
		})
	}
}

func TestChequeKeyOrder(t *testing.T) {
	// Keys must sort the same way as the ids they encode so that prefix
	// queries return cheques in creation order.
	assert.Equal(t, []byte{0, 0, 0, 0}, chequeKey(0))
	assert.Equal(t, []byte{0, 0, 1, 0}, chequeKey(256))
	assert.Equal(t, []byte{255, 255, 255, 255}, chequeKey(MaxChequeID))
}
