package safesendtest

import "github.com/safesend-network/safesend"

type Handler struct {
	checkCall   int
	CheckResult safesend.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult safesend.DeliverResult
	DeliverErr    error
}

var _ safesend.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx safesend.Context, db safesend.KVStore, tx safesend.Tx) (*safesend.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
