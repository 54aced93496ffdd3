// Package session keeps the client's local session: who is signed in and
// the per-day flags that let the UI skip redundant API calls.
//
// Everything lives in a [store.LocalStorage]. Secrets and employee data are
// stored as codec ciphertext. Flags are grouped into scopes, each stamped
// with the local calendar date they were written on; a flag read on a later
// date is treated as absent and its scope is purged at that moment.
//
// When the storage fails the availability probe every operation turns into
// a silent no-op: reads report absent and writes are dropped.
package session
