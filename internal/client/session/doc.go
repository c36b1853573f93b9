// Package session holds the process-wide record of who is logged in.
//
// A single *Store is created at startup and passed to every consumer. All
// mutation goes through its operations:
//
//   - LoadStoredAuth restores the session from the durable credential store.
//     It is called once at start and never fails visibly.
//   - Login and Register call the remote authentication endpoints, persist
//     the returned credentials and only then expose them in memory.
//     Failures are returned to the caller unchanged.
//   - Logout deletes the stored credentials and clears memory. It never
//     fails visibly; memory is cleared even when storage cannot be.
//
// Readers always observe IsAuthenticated == (User != nil && Token != "").
// Concurrent Login/Register calls are last-writer-wins.
//
// The store does not listen to the API gateway. When the gateway purges
// credentials after a 401 the in-memory session stays as is until the next
// LoadStoredAuth or until the consumer reacts to the error (for example by
// calling Logout).
package session
