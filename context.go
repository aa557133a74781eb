package safesend

import (
	"context"
)

// Context is a request-scoped, immutable state carrier. It is created by the
// host for every transaction and enriched on the way down the middleware
// stack, for example with the conditions the transaction signatures fulfill.
//
// There should exist two functions for every XYZ of type T
// that we want to support in Context:
//
//   WithXYZ(Context, T) Context
//   GetXYZ(Context) (val T, ok bool)
type Context = context.Context
