package store

import "github.com/safesend-network/safesend"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = safesend.ReadOnlyKVStore
type KVStore = safesend.KVStore
type SetDeleter = safesend.SetDeleter
type Batch = safesend.Batch
type Iterator = safesend.Iterator
type CacheableKVStore = safesend.CacheableKVStore
type KVCacheWrap = safesend.KVCacheWrap
type Model = safesend.Model

// Pair constructs a model from a key-value pair
func Pair(k, v []byte) Model {
	return safesend.Pair(k, v)
}
