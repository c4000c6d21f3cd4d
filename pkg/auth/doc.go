// Package auth verifies bearer tokens issued by an external identity provider.
//
// Tokens are RS256 JWTs. Signing keys come from the issuer's JSON Web Key Set and
// are cached in-process. Only verification is done here; tokens are never issued.
package auth
