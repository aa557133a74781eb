package cheque

import (
	"strconv"

	"github.com/safesend-network/safesend"
)

// Tag keys attached to delivery results. Observers use these to follow the
// cheque lifecycle without replaying state.
const (
	tagAction   = "action"
	tagChequeID = "cheque_id"
	tagFrom     = "from"
	tagTo       = "to"
	tagAmount   = "amount"
	tagAsset    = "asset"
	tagFee      = "fee"
)

func createChequeTags(id uint32, c *Cheque) []safesend.KVPair {
	asset := "native"
	if !c.IsNative() {
		asset = c.Token.String()
	}
	return []safesend.KVPair{
		safesend.NewTag(tagAction, "create_cheque"),
		safesend.NewTag(tagChequeID, strconv.FormatUint(uint64(id), 10)),
		safesend.NewTag(tagFrom, c.From.String()),
		safesend.NewTag(tagTo, c.To.String()),
		safesend.NewTag(tagAmount, strconv.FormatUint(c.Amount, 10)),
		safesend.NewTag(tagAsset, asset),
		safesend.NewTag(tagFee, strconv.FormatUint(c.Fee, 10)),
	}
}

func resolveChequeTags(action string, id uint32) []safesend.KVPair {
	return []safesend.KVPair{
		safesend.NewTag(tagAction, action),
		safesend.NewTag(tagChequeID, strconv.FormatUint(uint64(id), 10)),
	}
}

func updateFeeTags(fee uint64) []safesend.KVPair {
	return []safesend.KVPair{
		safesend.NewTag(tagAction, "update_cheque_fee"),
		safesend.NewTag(tagFee, strconv.FormatUint(fee, 10)),
	}
}
