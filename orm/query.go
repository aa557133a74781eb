package orm

import "github.com/safesend-network/safesend"

// queryPrefix returns all models in the db with the given key prefix,
// in ascending key order
func queryPrefix(db safesend.ReadOnlyKVStore, prefix []byte) ([]safesend.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create
// and iterator over the whole prefixed domain
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and update last byte
	end := make([]byte, len(prefix))
	copy(end, prefix)
	l := len(end) - 1
	end[l]++

	// wait, what if that overflowed?....
	for end[l] == 0 && l > 0 {
		l--
		end[l]++
	}

	// okay, funny guy, you gave us FFF, no end to this range...
	if l == 0 && end[0] == 0 {
		end = nil
	}
	return prefix, end
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr safesend.Iterator) ([]safesend.Model, error) {
	defer itr.Close()

	var res []safesend.Model
	for itr.Valid() {
		mod := safesend.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}
