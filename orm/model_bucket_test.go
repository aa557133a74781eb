package orm

import (
	"testing"

	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/safesendtest/assert"
	"github.com/safesend-network/safesend/store"
)

func TestModelBucket(t *testing.T) {
	db := store.MemStore()

	b := NewModelBucket("cnts", &Counter{})

	if err := b.Put(db, []byte("c1"), &Counter{Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 Counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
}

func TestModelBucketPutWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	err := b.Put(db, []byte("c1"), &badModel{})
	if !errors.ErrType.Is(err) {
		t.Fatalf("wrong model type must not be stored: %s", err)
	}
}

func TestModelBucketOneWrongModelType(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	assert.Nil(t, b.Put(db, []byte("c1"), &Counter{Count: 1}))

	var dest badModel
	err := b.One(db, []byte("c1"), &dest)
	if !errors.ErrType.Is(err) {
		t.Fatalf("wrong result type must not be loaded: %s", err)
	}
}

func TestModelBucketHas(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &Counter{})

	assert.Nil(t, b.Put(db, []byte("c1"), &Counter{Count: 1}))

	assert.Nil(t, b.Has(db, []byte("c1")))
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, []byte("unknown")))
	// nil key must not be found but also must not panic
	assert.IsErr(t, errors.ErrNotFound, b.Has(db, nil))
}

// badModel looks like a model but is not the bucket content type
type badModel struct {
	Counter
}

func (badModel) Copy() CloneableData { return &badModel{} }
