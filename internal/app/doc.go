// Package app provides the main application logic for talking to Meridian
// App Services. It wires the configuration, transport, base-URL resolver,
// session provider, and request composer into an API client, and holds the
// bodies of the CLI commands.
package app
