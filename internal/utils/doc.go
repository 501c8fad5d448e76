// Package utils provides small shared helpers used across the application:
// User-Agent providers for HTTP requests, randomized pauses for retry
// pacing, and content-type inspection for response logging.
package utils
