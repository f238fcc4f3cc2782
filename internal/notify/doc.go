// Package notify posts announcements for newly discovered tournaments.
//
// The notify package supports posting announcements to various channels
// including Twitter. It handles OAuth authentication, rate limiting, and
// message formatting, plus a dry-run implementation for previewing posts.
package notify
