package cheque

import (
	"encoding/binary"
	"math"

	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/gconf"
	"github.com/safesend-network/safesend/orm"
)

const (
	// BucketName stores all cheque records.
	BucketName = "cheque"

	// MaxChequeID is the value at which the id counter saturates. Once
	// that many cheques were created no further ones can be.
	MaxChequeID = math.MaxUint32
)

var _ orm.CloneableData = (*Cheque)(nil)

// Validate enforces well formed cheque content.
func (c *Cheque) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "From", c.From.Validate())
	errs = errors.AppendField(errs, "To", c.To.Validate())
	if c.From.Equals(c.To) {
		errs = errors.Append(errs, errors.Field("To", errors.ErrInput, "sender and recipient must differ"))
	}
	if c.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "amount must be positive"))
	}
	if len(c.Token) != 0 {
		errs = errors.AppendField(errs, "Token", c.Token.Validate())
	}
	switch c.Status {
	case Pending, Collected, Cancelled:
		// ok
	default:
		errs = errors.Append(errs, errors.Field("Status", errors.ErrState, "invalid status"))
	}
	return errs
}

func (c *Cheque) Copy() orm.CloneableData {
	return &Cheque{
		From:   c.From.Clone(),
		To:     c.To.Clone(),
		Amount: c.Amount,
		Token:  c.Token.Clone(),
		Fee:    c.Fee,
		Status: c.Status,
	}
}

// IsNative returns true when the cheque is denominated in the native asset
// rather than in a fungible token.
func (c *Cheque) IsNative() bool {
	return len(c.Token) == 0
}

// NewBucket returns a bucket for storing cheque records.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Cheque{})
}

func newChequeSeq() orm.Sequence {
	return orm.NewSequence(BucketName, "id")
}

// chequeKey returns the bucket key for a cheque id.
func chequeKey(id uint32) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, id)
	return key
}

// newChequeID assigns the next cheque id. Ids are sequential starting from
// zero. When the id counter is saturated ErrRecordsLimit is returned and the
// sequence is not advanced.
func newChequeID(db safesend.KVStore, seq *orm.Sequence) (uint32, error) {
	used, _, err := seq.Latest(db)
	if err != nil {
		return 0, errors.Wrap(err, "sequence latest")
	}
	if used >= MaxChequeID {
		return 0, errors.Wrap(ErrRecordsLimit, "cheque id space exhausted")
	}
	n, err := seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "sequence next")
	}
	return uint32(n - 1), nil
}

// ChequesIssued returns the number of cheques ever created. This includes
// cheques that were already collected or cancelled.
func ChequesIssued(db safesend.KVStore) (int64, error) {
	seq := newChequeSeq()
	n, _, err := seq.Latest(db)
	return n, err
}

// chequeBook is the module account holding all native funds locked by
// pending cheques.
var chequeBook = safesend.NewCondition("cheque", "book", []byte("custody"))

// ChequeBookAddr returns the address holding the native funds locked by
// pending cheques.
func ChequeBookAddr() safesend.Address {
	return chequeBook.Address()
}

var _ gconf.Configuration = (*Configuration)(nil)

// Validate enforces a well formed fee policy.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	return errs
}

func (c *Configuration) Copy() orm.CloneableData {
	return &Configuration{
		Admin: c.Admin.Clone(),
		Fee:   c.Fee,
	}
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "cheque", &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}

// LoadConfiguration returns the current fee policy.
func LoadConfiguration(db gconf.ReadStore) (*Configuration, error) {
	return loadConf(db)
}
