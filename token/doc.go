// Package token provides tokenization support for path queries.
//
// [Tokenize] splits a raw query string into structural tokens, honoring
// backslash escaping, single and double quoting, and parenthesized
// expression spans. It is permissive: malformed input never fails here,
// strict interpretation is deferred to the parser.
package token
