// Package tournament holds the tournament data model and the derivation
// layer on top of it: tour-category, week-bucket and status classification,
// tournament-code extraction, and query filtering for the list endpoint.
//
// Records are produced by the sync job and treated as a read-only snapshot
// everywhere else. Classification fields are pure functions of a record and
// the current time; they are derived on every read and never persisted.
package tournament
