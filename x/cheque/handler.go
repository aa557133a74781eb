package cheque

import (
	"math"

	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/gconf"
	"github.com/safesend-network/safesend/orm"
	"github.com/safesend-network/safesend/x"
	"github.com/safesend-network/safesend/x/cash"
	"github.com/safesend-network/safesend/x/token"
)

const (
	createChequeCost  int64 = 300
	resolveChequeCost int64 = 150
	updateFeeCost     int64 = 50
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r safesend.Registry, auth x.Authenticator, ctrl cash.Controller, tokens token.Controller) {
	bucket := NewBucket()
	seq := newChequeSeq()
	r.Handle(&CreateChequeMsg{}, &createChequeHandler{
		auth:   auth,
		bucket: bucket,
		seq:    seq,
		ctrl:   ctrl,
		tokens: tokens,
	})
	r.Handle(&CancelChequeMsg{}, &cancelChequeHandler{
		auth:   auth,
		bucket: bucket,
		ctrl:   ctrl,
		tokens: tokens,
	})
	r.Handle(&CollectChequeMsg{}, &collectChequeHandler{
		auth:   auth,
		bucket: bucket,
		ctrl:   ctrl,
		tokens: tokens,
	})
	r.Handle(&UpdateFeeMsg{}, &updateFeeHandler{
		auth: auth,
	})
}

// RegisterQuery will register this bucket as "/cheques" and the fee policy
// singleton as "/cheques/conf".
func RegisterQuery(qr safesend.QueryRouter) {
	NewBucket().Register("cheques", qr)
	qr.Register("/cheques/conf", confQuery{})
}

type confQuery struct{}

var _ safesend.QueryHandler = confQuery{}

func (confQuery) Query(db safesend.ReadOnlyKVStore, mod string, data []byte) ([]safesend.Model, error) {
	if mod != safesend.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod: %s", mod)
	}
	key := []byte("_c:cheque")
	value, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []safesend.Model{{Key: key, Value: value}}, nil
}

type createChequeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	seq    orm.Sequence
	ctrl   cash.Controller
	tokens token.Controller
}

var _ safesend.Handler = (*createChequeHandler)(nil)

func (h *createChequeHandler) Check(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safesend.CheckResult{GasAllocated: createChequeCost}, nil
}

func (h *createChequeHandler) Deliver(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.DeliverResult, error) {
	msg, conf, sender, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Take custody of the attached native payment and, for a token
	// cheque, of the token amount. A failed token transfer aborts the
	// whole delivery.
	if msg.Payment > 0 {
		if err := h.ctrl.MoveCoins(db, sender, ChequeBookAddr(), msg.Payment); err != nil {
			return nil, errors.Wrap(err, "cannot collect payment")
		}
	}
	if len(msg.Token) != 0 {
		if err := h.tokens.TransferFrom(db, msg.Token, sender, ChequeBookAddr(), msg.Amount, nil); err != nil {
			return nil, errors.Wrap(err, "token transfer")
		}
	}

	id, err := newChequeID(db, &h.seq)
	if err != nil {
		return nil, err
	}
	c := &Cheque{
		From:   sender,
		To:     msg.To,
		Amount: msg.Amount,
		Token:  msg.Token,
		Fee:    conf.Fee,
		Status: Pending,
	}
	key := chequeKey(id)
	if err := h.bucket.Put(db, key, c); err != nil {
		return nil, err
	}

	return &safesend.DeliverResult{
		Data: key,
		Tags: createChequeTags(id, c),
	}, nil
}

// validate ensures the sender attached the exact native payment required for
// this cheque. It returns the message, the fee policy applied and the sender
// address.
func (h *createChequeHandler) validate(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*CreateChequeMsg, *Configuration, safesend.Address, error) {
	var msg CreateChequeMsg
	if err := safesend.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	signer := x.MainSigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	sender := signer.Address()
	if msg.To.Equals(sender) {
		return nil, nil, nil, errors.Wrap(errors.ErrInput, "cannot write a cheque to self")
	}

	used, _, err := h.seq.Latest(db)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "sequence latest")
	}
	if used >= MaxChequeID {
		return nil, nil, nil, errors.Wrap(ErrRecordsLimit, "cheque id space exhausted")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, nil, err
	}
	required := conf.Fee
	if len(msg.Token) == 0 {
		if msg.Amount > math.MaxUint64-required {
			return nil, nil, nil, errors.Wrap(ErrIncorrectFee, "amount and fee overflow")
		}
		required += msg.Amount
	}
	if msg.Payment != required {
		return nil, nil, nil, errors.Wrapf(ErrIncorrectFee, "want %d, got %d", required, msg.Payment)
	}
	return &msg, conf, sender, nil
}

type cancelChequeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   cash.Controller
	tokens token.Controller
}

var _ safesend.Handler = (*cancelChequeHandler)(nil)

func (h *cancelChequeHandler) Check(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safesend.CheckResult{GasAllocated: resolveChequeCost}, nil
}

func (h *cancelChequeHandler) Deliver(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.DeliverResult, error) {
	msg, c, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// The cheque must leave the pending state before any funds move. If a
	// token refund fails the returned error makes the host discard this
	// write together with everything else.
	c.Status = Cancelled
	key := chequeKey(msg.ChequeId)
	if err := h.bucket.Put(db, key, c); err != nil {
		return nil, err
	}

	if len(c.Token) != 0 {
		if err := h.tokens.Transfer(db, c.Token, c.From, c.Amount, nil); err != nil {
			return nil, errors.Wrap(err, "token refund")
		}
	}
	refund := c.Fee
	if len(c.Token) == 0 {
		refund += c.Amount
	}
	if refund > 0 {
		// The cheque book must hold every native payment ever attached
		// to a pending cheque. Failing to pay out from it means the
		// books are broken and no state written by this block can be
		// trusted.
		if err := h.ctrl.MoveCoins(db, ChequeBookAddr(), c.From, refund); err != nil {
			panic(errors.Wrap(err, "cheque book payout"))
		}
	}

	return &safesend.DeliverResult{
		Tags: resolveChequeTags("cancel_cheque", msg.ChequeId),
	}, nil
}

func (h *cancelChequeHandler) validate(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*CancelChequeMsg, *Cheque, error) {
	var msg CancelChequeMsg
	if err := safesend.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	var c Cheque
	if err := h.bucket.One(db, chequeKey(msg.ChequeId), &c); err != nil {
		return nil, nil, errors.Wrapf(err, "cheque %d", msg.ChequeId)
	}
	if !h.auth.HasAddress(ctx, c.From) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the sender can cancel")
	}
	if c.Status != Pending {
		return nil, nil, errors.Wrapf(errors.ErrState, "cheque is %s", c.Status)
	}
	return &msg, &c, nil
}

type collectChequeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   cash.Controller
	tokens token.Controller
}

var _ safesend.Handler = (*collectChequeHandler)(nil)

func (h *collectChequeHandler) Check(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safesend.CheckResult{GasAllocated: resolveChequeCost}, nil
}

func (h *collectChequeHandler) Deliver(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.DeliverResult, error) {
	msg, c, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	c.Status = Collected
	key := chequeKey(msg.ChequeId)
	if err := h.bucket.Put(db, key, c); err != nil {
		return nil, err
	}

	if len(c.Token) != 0 {
		if err := h.tokens.Transfer(db, c.Token, c.To, c.Amount, nil); err != nil {
			return nil, errors.Wrap(err, "token transfer")
		}
	} else {
		if err := h.ctrl.MoveCoins(db, ChequeBookAddr(), c.To, c.Amount); err != nil {
			panic(errors.Wrap(err, "cheque book payout"))
		}
	}
	if c.Fee > 0 {
		// The fee snapshotted at creation is paid out to the current
		// administrator.
		conf, err := loadConf(db)
		if err != nil {
			return nil, err
		}
		if err := h.ctrl.MoveCoins(db, ChequeBookAddr(), conf.Admin, c.Fee); err != nil {
			panic(errors.Wrap(err, "cheque book payout"))
		}
	}

	return &safesend.DeliverResult{
		Tags: resolveChequeTags("collect_cheque", msg.ChequeId),
	}, nil
}

func (h *collectChequeHandler) validate(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*CollectChequeMsg, *Cheque, error) {
	var msg CollectChequeMsg
	if err := safesend.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	var c Cheque
	if err := h.bucket.One(db, chequeKey(msg.ChequeId), &c); err != nil {
		return nil, nil, errors.Wrapf(err, "cheque %d", msg.ChequeId)
	}
	if !h.auth.HasAddress(ctx, c.To) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the recipient can collect")
	}
	if c.Status != Pending {
		return nil, nil, errors.Wrapf(errors.ErrState, "cheque is %s", c.Status)
	}
	return &msg, &c, nil
}

type updateFeeHandler struct {
	auth x.Authenticator
}

var _ safesend.Handler = (*updateFeeHandler)(nil)

func (h *updateFeeHandler) Check(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &safesend.CheckResult{GasAllocated: updateFeeCost}, nil
}

func (h *updateFeeHandler) Deliver(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Only cheques created from now on pay the new fee. Pending cheques
	// carry the fee that was configured when they were written.
	conf.Fee = msg.Fee
	if err := gconf.Save(db, "cheque", conf); err != nil {
		return nil, err
	}

	return &safesend.DeliverResult{
		Tags: updateFeeTags(msg.Fee),
	}, nil
}

func (h *updateFeeHandler) validate(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*UpdateFeeMsg, *Configuration, error) {
	var msg UpdateFeeMsg
	if err := safesend.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the admin can update the fee")
	}
	return &msg, conf, nil
}
