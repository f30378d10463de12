// Package password implements credential hashing and verification for
// tickauth.
//
// Two schemes are provided. [SaltedSHA256] is the storefront's storage
// format: a random per-account salt and a SHA-256 digest of salt||plaintext,
// stored as "salt:hash" in hex. [Argon2] produces PHC-formatted argon2id
// hashes and reports when a stored credential was produced with weaker
// parameters (or with the legacy scheme) so the engine can re-hash on login.
//
// Verification never returns an error: a malformed stored credential simply
// does not verify. All hash comparisons are constant-time with respect to
// content; only the length check may short-circuit, since length is not
// secret.
package password
