package gconf

import (
	"encoding/json"
	"testing"

	"github.com/safesend-network/safesend"
	"github.com/safesend-network/safesend/errors"
	"github.com/safesend-network/safesend/safesendtest/assert"
	"github.com/safesend-network/safesend/store"
)

// myconf is a test configuration. It is using JSON serialization instead of
// a generated protobuf codec to keep the test self contained.
type myconf struct {
	Number int64  `json:"number"`
	Text   string `json:"text"`
}

func (c *myconf) Marshal() ([]byte, error) {
	return json.Marshal(c)
}

func (c *myconf) Unmarshal(raw []byte) error {
	return json.Unmarshal(raw, c)
}

func (c *myconf) Validate() error {
	if c.Number < 0 {
		return errors.Wrap(errors.ErrInput, "negative number")
	}
	return nil
}

func TestSaveLoad(t *testing.T) {
	db := store.MemStore()

	src := myconf{Number: 42, Text: "foobar"}
	assert.Nil(t, Save(db, "mypkg", &src))

	var got myconf
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, src, got)

	// each package has its own configuration space
	var missing myconf
	assert.IsErr(t, errors.ErrNotFound, Load(db, "otherpkg", &missing))
}

func TestSaveInvalid(t *testing.T) {
	db := store.MemStore()

	src := myconf{Number: -1}
	assert.IsErr(t, errors.ErrInput, Save(db, "mypkg", &src))
}

func TestInitConfig(t *testing.T) {
	const genesis = `
		{
			"conf": {
				"mypkg": {
					"number": 333,
					"text": "genesis text"
				}
			}
		}
	`

	var opts safesend.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	var conf myconf
	if err := InitConfig(db, opts, "mypkg", &conf); err != nil {
		t.Fatalf("cannot initialize configuration: %s", err)
	}

	var got myconf
	assert.Nil(t, Load(db, "mypkg", &got))
	assert.Equal(t, myconf{Number: 333, Text: "genesis text"}, got)
}

func TestInitConfigMissingPackage(t *testing.T) {
	var opts safesend.Options
	assert.Nil(t, json.Unmarshal([]byte(`{"conf": {}}`), &opts))

	db := store.MemStore()
	var conf myconf
	err := InitConfig(db, opts, "mypkg", &conf)
	assert.IsErr(t, errors.ErrNotFound, err)
}
