package cheque

import (
	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
)

const (
	pathCreateCheque  = "cheque/create"
	pathCancelCheque  = "cheque/cancel"
	pathCollectCheque = "cheque/collect"
	pathUpdateFee     = "cheque/update_fee"
)

var _ safesend.Msg = (*CreateChequeMsg)(nil)

func (CreateChequeMsg) Path() string {
	return pathCreateCheque
}

func (m *CreateChequeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "To", m.To.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "amount must be positive"))
	}
	if len(m.Token) != 0 {
		errs = errors.AppendField(errs, "Token", m.Token.Validate())
	}
	return errs
}

var _ safesend.Msg = (*CancelChequeMsg)(nil)

func (CancelChequeMsg) Path() string {
	return pathCancelCheque
}

func (m *CancelChequeMsg) Validate() error {
	return nil
}

var _ safesend.Msg = (*CollectChequeMsg)(nil)

func (CollectChequeMsg) Path() string {
	return pathCollectCheque
}

func (m *CollectChequeMsg) Validate() error {
	return nil
}

var _ safesend.Msg = (*UpdateFeeMsg)(nil)

func (UpdateFeeMsg) Path() string {
	return pathUpdateFee
}

func (m *UpdateFeeMsg) Validate() error {
	return nil
}
