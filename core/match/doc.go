// Package match selects the best correlation candidate for an incoming
// fingerprint record from a bounded set of recently stored sessions.
package match
