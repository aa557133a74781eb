package cash

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/safesendtest"
	"github.com/safesend-network/safesend/safesendtest/assert"
	"github.com/safesend-network/safesend/store"
)

func TestIssueAndBalance(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()

	addr := safesendtest.NewAddress()

	// a fresh account has no funds but also causes no error
	bal, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), bal)

	assert.Nil(t, ctrl.IssueCoins(db, addr, 123))
	bal, err = ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(123), bal)

	// issuing more adds up
	assert.Nil(t, ctrl.IssueCoins(db, addr, 7))
	bal, err = ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(130), bal)

	// cannot overflow a wallet
	err = ctrl.IssueCoins(db, addr, math.MaxUint64)
	assert.IsErr(t, errors.ErrOverflow, err)
}

func TestMoveCoins(t *testing.T) {
	src := safesendtest.NewAddress()
	dest := safesendtest.NewAddress()

	cases := map[string]struct {
		srcBalance  uint64
		destBalance uint64
		amount      uint64
		wantErr     *errors.Error
		wantSrc     uint64
		wantDest    uint64
	}{
		"moves funds between accounts": {
			srcBalance: 100,
			amount:     40,
			wantSrc:    60,
			wantDest:   40,
		},
		"whole balance can be moved": {
			srcBalance: 100,
			amount:     100,
			wantSrc:    0,
			wantDest:   100,
		},
		"zero amount is rejected": {
			srcBalance: 100,
			amount:     0,
			wantErr:    errors.ErrAmount,
		},
		"insufficient funds": {
			srcBalance: 31,
			amount:     32,
			wantErr:    errors.ErrAmount,
		},
		"empty account cannot send": {
			srcBalance: 0,
			amount:     1,
			wantErr:    errors.ErrAmount,
		},
		"recipient overflow": {
			srcBalance:  10,
			destBalance: math.MaxUint64 - 5,
			amount:      10,
			wantErr:     errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			if tc.srcBalance != 0 {
				assert.Nil(t, ctrl.IssueCoins(db, src, tc.srcBalance))
			}
			if tc.destBalance != 0 {
				assert.Nil(t, ctrl.IssueCoins(db, dest, tc.destBalance))
			}

			err := ctrl.MoveCoins(db, src, dest, tc.amount)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			assert.Nil(t, err)

			bal, err := ctrl.Balance(db, src)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSrc, bal)
			bal, err = ctrl.Balance(db, dest)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantDest, bal)
		})
	}
}

func TestGenesisInitializer(t *testing.T) {
	addr := safesendtest.NewAddress()
	genesis := `{
		"cash": [
			{"address": "` + addr.String() + `", "balance": 987654321}
		]
	}`

	var opts safesend.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	bal, err := NewController().Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(987654321), bal)
}
