// Package composer builds outgoing Meridian API requests.
// It merges header contexts contributed by several configuration tiers
// in a fixed precedence order, attaches the session bearer token,
// resolves the API base URL once per composer, and delegates the actual
// network send to an injected transport.
// Composers are immutable; Clone derives new composers that share the
// transport and the base-URL resolution state while layering additional
// headers on top.
package composer
