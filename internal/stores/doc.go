// Package stores implements the durable key/value records consumed by the
// engine: the account map keyed by case-folded email. Records are JSON
// values in a Redis hash, read and written by full-value replacement; a
// record that fails to decode is treated as absent rather than surfacing a
// parse fault.
package stores
