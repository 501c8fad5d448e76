// Package http provides the net/http-backed transport for composed requests,
// together with round-tripper decorators for request/response logging,
// User-Agent injection, and request-ID stamping.
package http
