// Package ir defines the compiled representation of path queries: node
// kinds, selector combinators, slice ranges and the wrapped values the
// evaluator produces.
package ir
