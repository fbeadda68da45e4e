// Package models defines the domain entities for the now playing relay.
//
// There is exactly one entity with state that outlives a request:
//   - [TokenRecord] : the access/refresh token pair obtained from the last successful code exchange
//
// A record is read through its [AuthState], computed from wall-clock time on every read.
// No transition event fires when a token expires: [StateAuthenticated] becomes [StateExpired]
// purely because "now" crosses the expiry instant.
//
// Persistence interfaces live next to their implementations in package repositories.
package models
