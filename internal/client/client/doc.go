// Package client is the API gateway used by every trainerhub resource
// service.
//
// # Overview
//
// Gateway wraps a single http.Client configured with the API base URL, a
// fixed timeout and JSON headers. Its transport (authTransport) plays the
// role of request/response interceptors:
//
//  1. Before each request it reads the bearer token from the durable
//     credential store (not from the in-memory session) and, when present,
//     sets "Authorization: Bearer <token>". Every request gets an
//     X-Request-ID.
//  2. After each response with status 401 it deletes both stored credential
//     entries and fires the optional OnUnauthorized hook. The response still
//     reaches the caller, which sees an *APIError matching ErrUnauthorized.
//
// The in-memory session is not touched here; it catches up on the next
// restore or when the caller reacts to ErrUnauthorized.
//
// # Error Handling
//
// Non-2xx responses become *APIError values. Callers match them with
// errors.Is against ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict,
// ErrBadRequest and ErrUnavailable, or use errors.As for the status code and
// server message. Network failures and timeouts match ErrUnavailable and
// still unwrap to the underlying *url.Error. Nothing is retried.
package client
