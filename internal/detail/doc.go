// Package detail serves sanitized tournament detail pages. Pages come from
// the upstream mirror with a live-site fallback, pass through a sanitizer
// that strips scripts, inline handlers and cross-origin links, and sit in a
// short TTL cache so repeated reads of the same tournament stay cheap.
package detail
