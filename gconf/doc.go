/*

Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps its configuration in a singleton entity, stored under a
key derived from the package name. Configuration is loaded from the genesis
file and can later be changed only by an explicit update transaction handled
by the owning extension.

*/
package gconf
