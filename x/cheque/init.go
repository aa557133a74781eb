package cheque

import (
	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ safesend.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial fee policy information from genesis and
// save it in the database.
func (*Initializer) FromGenesis(opts safesend.Options, db safesend.KVStore) error {
	return gconf.InitConfig(db, opts, "cheque", &Configuration{})
}
