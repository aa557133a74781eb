package app

import (
	"context"
	"testing"

	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/safesendtest"
	"github.com/safesend-network/safesend/safesendtest/assert"
)

func TestRouterSuccess(t *testing.T) {
	r := NewRouter()

	msg := &safesendtest.Msg{RoutePath: "test/good"}
	h := &safesendtest.Handler{}
	r.Handle(msg, h)

	tx := &safesendtest.Tx{Msg: msg}

	_, err := r.Handler(msg).Check(context.Background(), nil, tx)
	assert.Nil(t, err)
	_, err = r.Handler(msg).Deliver(context.Background(), nil, tx)
	assert.Nil(t, err)

	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, h.DeliverCallCount())
}

func TestRouterNoRoute(t *testing.T) {
	r := NewRouter()

	msg := &safesendtest.Msg{RoutePath: "test/secret"}
	tx := &safesendtest.Tx{Msg: msg}

	_, err := r.Handler(msg).Check(context.Background(), nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Handler(msg).Deliver(context.Background(), nil, tx)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestRouterDuplicateRoutePanics(t *testing.T) {
	r := NewRouter()

	msg := &safesendtest.Msg{RoutePath: "test/dup"}
	r.Handle(msg, &safesendtest.Handler{})

	assert.Panics(t, func() {
		r.Handle(msg, &safesendtest.Handler{})
	})
}

func TestRouterInvalidPathPanics(t *testing.T) {
	r := NewRouter()

	msg := &safesendtest.Msg{RoutePath: "not a valid path!"}
	assert.Panics(t, func() {
		r.Handle(msg, &safesendtest.Handler{})
	})
}
