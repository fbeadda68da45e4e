// Package server provides HTTP routing, middleware, and the OAuth relay handlers.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation dispatches on the exact request path. There is no method filtering; any
// unregistered path receives a 404 with the body "Not Found".
//
// # Handlers
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes.
//
//	GET /login              → [LoginHandler]: 302 to the provider's authorize URL
//	GET /callback?code=...  → [CallbackHandler]: exchange the code, overwrite the stored tokens
//	GET /currently-playing  → [NowPlayingHandler]: proxy the provider's playback state
//
// # Token Lifecycle
//
// The handlers share one [repositories.TokenStore], injected by [NewRelayRouter]. The callback is its only
// writer and the now playing handler its only reader. Authentication state is recomputed from the clock on
// every request, so an expired token behaves exactly like a missing one: both yield 401.
//
// Tokens live only as long as the store. Separate relay processes do not share them.
//
// # Known Gaps
//
// The authorization request carries no state parameter and the callback performs no CSRF check.
// Refresh tokens are stored but never used.
package server
