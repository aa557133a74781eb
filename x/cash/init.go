package cash

import (
	"github.com/safesend-network/safesend"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use safesend.Address, so address in hex, not base64
type GenesisAccount struct {
	Address safesend.Address `json:"address"`
	Balance uint64           `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ safesend.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts safesend.Options, kv safesend.KVStore) error {
	accts := []GenesisAccount{}
	err := opts.ReadOptions(optKey, &accts)
	if err != nil {
		return err
	}
	bucket := NewWalletBucket()
	for _, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return err
		}
		w := Wallet{Balance: acct.Balance}
		if err := bucket.Put(kv, acct.Address, &w); err != nil {
			return err
		}
	}
	return nil
}
