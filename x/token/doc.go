/*
Package token declares the interface for moving fungible tokens that live
in external token registries.

Unlike the native funds managed by x/cash, fungible tokens are managed by
separate contracts. This package only defines the calling contract between
extensions that need to move such tokens and the implementation that knows
how to reach the registry.
*/
package token
