// Package api contains the transport layer for the superheroes backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the whole backend surface: Register/Login/Logout, Profile, and the
//     protected Superheroes listing.
//  2. A concrete HTTP implementation (see HTTPClient) that sends JSON over
//     credentialed requests. Session state lives in an opaque server-issued
//     cookie held by the client's cookie jar; the client never inspects it.
//     Each request carries an X-Request-Id header for log correlation.
//  3. Response mapping to sentinel errors so callers can branch with
//     errors.Is: authorization failures become ErrUnauthorized, transport
//     failures (unreachable server, timeouts, garbled responses) become
//     ErrUnavailable, and other non-2xx statuses become ErrServer.
//
// # Error Handling
//
// Only the session guard treats ErrUnauthorized specially; every other
// caller is expected to surface a generic localized message and log the
// wrapped detail.
//
// See Also
//
//   - Interface: Client
//   - HTTP impl: HTTPClient
//   - Errors:    ErrUnauthorized, ErrUnavailable, ErrServer
package api
