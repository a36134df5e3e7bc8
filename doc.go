// Package ezcli is a small command-line argument library for Go that looks up
// flags and options directly in an argument list, without declaring a parser
// up front.
//
// Flags are boolean switches found by short (-v) or long (--verbose) name;
// short flags may be grouped (-abc). Options take the value in the token that
// follows them (--name Alice). Lookups never fail: a missing flag is false and
// a missing option is absent.
//
// The functions in package core take the argument list explicitly. Flag and
// Option in this package read the process arguments instead.
package ezcli
