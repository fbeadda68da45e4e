// Package repositories provides the token store used by the relay's handlers.
//
// A [TokenStore] holds a single [models.TokenRecord]. It is owned by whoever constructs it and
// injected into each handler, so two relay instances never share authentication state: a user who
// authenticates against one instance is still unauthenticated on another.
//
// [MemoryTokenRepository] is the only implementation. Persisting tokens across restarts is
// intentionally unsupported.
package repositories
