// Package api exposes the hub over HTTP: the classified tournament list
// with filtering, per-tournament detail and calendar exports, the entry
// rankings, and the live score feed. Tournament data is served from the
// dataset snapshot loaded at startup; rankings, live scores and detail
// pages are proxied from the source site on request.
package api
