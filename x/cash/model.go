package cash

import (
	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

var _ orm.Model = (*Wallet)(nil)

// Validate is always successful, there is no invalid balance
func (w *Wallet) Validate() error {
	return nil
}

// Copy produces a new copy to fulfill the Model interface
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{
		Balance: w.Balance,
	}
}

// NewWalletBucket returns a bucket for keeping track of the native token
// balance of each account. Wallets are indexed by the account address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}

// loadWallet returns the wallet stored under the given address. A missing
// wallet is not an error, an empty wallet is returned instead.
func loadWallet(bucket orm.ModelBucket, db safesend.ReadOnlyKVStore, addr safesend.Address) (*Wallet, error) {
	var w Wallet
	switch err := bucket.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return &Wallet{}, nil
	default:
		return nil, errors.Wrap(err, "cannot load wallet")
	}
}
