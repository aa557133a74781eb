package cash

import (
	"math"

	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/orm"
)

// Controller is the functionality needed by other extensions to move native
// funds between accounts. This is implemented by BankController and can be
// replaced by a mock in tests.
type Controller interface {
	// MoveCoins removes funds from the source account and adds them to
	// the destination account. It fails when the source account does not
	// hold enough.
	MoveCoins(db safesend.KVStore, src safesend.Address, dest safesend.Address, amount uint64) error

	// IssueCoins creates new funds on the destination account out of thin
	// air. Use during genesis and in tests.
	IssueCoins(db safesend.KVStore, dest safesend.Address, amount uint64) error

	// Balance returns the amount of native tokens the account holds. An
	// account without a wallet has a zero balance, not an error.
	Balance(db safesend.ReadOnlyKVStore, addr safesend.Address) (uint64, error)
}

// BankController implements Controller on top of the wallet bucket.
type BankController struct {
	bucket orm.ModelBucket
}

var _ Controller = (*BankController)(nil)

// NewController returns a controller using the default wallet bucket
func NewController() *BankController {
	return &BankController{
		bucket: NewWalletBucket(),
	}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient funds, it fails.
func (c *BankController) MoveCoins(db safesend.KVStore, src safesend.Address, dest safesend.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "zero transfer")
	}

	sender, err := loadWallet(c.bucket, db, src)
	if err != nil {
		return err
	}
	if sender.Balance < amount {
		return errors.Wrapf(errors.ErrAmount, "insufficient funds: %d < %d", sender.Balance, amount)
	}

	recipient, err := loadWallet(c.bucket, db, dest)
	if err != nil {
		return err
	}
	if recipient.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}

	sender.Balance -= amount
	recipient.Balance += amount

	if err := c.bucket.Put(db, src, sender); err != nil {
		return errors.Wrap(err, "cannot update sender wallet")
	}
	if err := c.bucket.Put(db, dest, recipient); err != nil {
		return errors.Wrap(err, "cannot update recipient wallet")
	}
	return nil
}

// IssueCoins attempts to add the given amount to the destination
// account. Fails if it overflows the wallet.
func (c *BankController) IssueCoins(db safesend.KVStore, dest safesend.Address, amount uint64) error {
	recipient, err := loadWallet(c.bucket, db, dest)
	if err != nil {
		return err
	}
	if recipient.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "recipient balance")
	}
	recipient.Balance += amount
	return c.bucket.Put(db, dest, recipient)
}

// Balance returns the native funds of the account
func (c *BankController) Balance(db safesend.ReadOnlyKVStore, addr safesend.Address) (uint64, error) {
	w, err := loadWallet(c.bucket, db, addr)
	if err != nil {
		return 0, err
	}
	return w.Balance, nil
}
