// Package scrape extracts structured records from upstream HTML. The season
// listing and livescore fragments come from a server-rendered page whose
// markup is flat and regular, so both parsers work on raw markup with
// anchored regular expressions instead of a DOM tree. Malformed rows are
// dropped, never errored on: a partial listing beats no listing.
package scrape
