// Package models defines the trainerhub domain entities exchanged with the
// remote API, the request payloads for creating and updating them, and the
// small data-shaping helpers the CLI uses to filter and build them.
//
// Optional JSON fields are pointers or omitempty values so that partial
// updates only carry the fields the caller set.
package models
