// Package utils provides small conversion helpers shared by the HTTP handlers and
// the CLI, such as parsing hero ids and loose boolean flags from query strings.
package utils
