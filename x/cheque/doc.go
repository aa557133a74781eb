/*
Package cheque implements escrowed payments between two accounts.

A cheque locks an amount of a native or fungible token asset written by a
sender to a recipient. While the cheque is pending the recipient can collect
it or the sender can cancel it, after which it is settled forever. Every
cheque pays a creation fee in native tokens. The fee is defined by a
configuration singleton, charged when the cheque is written and paid out to
the administrator when the cheque is collected or refunded on cancel.

Native funds locked by pending cheques are held by the cheque book, a module
controlled account. Fungible token amounts are held through the external
token registry the cheque is denominated in.
*/
package cheque
