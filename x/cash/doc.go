/*
Package cash keeps track of the native token balance of every
account and allows moving funds between them.

There is no logic in the tokens, except that the balance of any
account may not go below zero. Simple and safe.
*/
package cash
