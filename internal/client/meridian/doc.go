// Package meridian provides a Go client for the Meridian App Services API.
// All JSON calls go through the request composer, which owns header
// composition, bearer-token attachment, and base-URL resolution.
// The client adds endpoint knowledge on top: health checks, application
// metadata, user profiles, server-side function calls with bounded retry
// on throttling, GraphQL queries, and raw asset downloads.
package meridian
