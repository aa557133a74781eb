package orm

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/safesend-network/safesend/safesendtest/assert"
	"github.com/safesend-network/safesend/store"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()

	cases := []struct {
		bucket     string
		name       string
		init       int64
		increments int64
	}{
		0: {"aaa", "id", 0, 22},
		1: {"aaa", "seq", 0, 11},
		2: {"aaa", "id", 22, 18},
		3: {"bbb", "id", 0, 77},
		4: {"aaa", "seq", 11, 248},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			s := NewSequence(tc.bucket, tc.name)
			orig, origBz, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, tc.init, orig)

			var val int64
			for i := int64(0); i < tc.increments; i++ {
				val, err = s.NextInt(db)
				assert.Nil(t, err)
			}
			// expect the final value to be this
			expect := tc.init + tc.increments
			assert.Equal(t, expect, val)

			// make sure final value is bigger than original value
			// if we use the raw bytes to index stuff
			_, last, err := s.Latest(db)
			assert.Nil(t, err)
			assert.Equal(t, 1, bytes.Compare(last, origBz))
		})
	}
}

func TestSequenceValueEncoding(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("enc", "id")

	bz, err := s.NextVal(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), DecodeSequence(bz))
	assert.Equal(t, bz, EncodeSequence(1))

	// Latest must not modify state.
	val, raw, err := s.Latest(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), val)
	assert.Equal(t, bz, raw)
}
