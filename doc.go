/*
Package safesend defines all common interfaces that weave together the
chequebook ledger extension and the host it runs inside.

The host drives every state transition by delivering a transaction to a
registered Handler. Handlers read and write through the KVStore interfaces
and report what happened through DeliverResult tags. The host guarantees
that each delivery is atomic: it hands the handler a cache-wrapped store
and discards all writes when the handler returns an error.

Identity is expressed through Conditions and the Addresses derived from
them. The host authenticates each transaction and exposes the fulfilled
conditions through an x.Authenticator implementation.
*/
package safesend
