// Package timezone renders and parses todo timestamps in the application timezone.
//
//	formatted := timezone.FormatTimestamp(todo.Date) // "2023-04-15T19:46:51.109Z"
//	t, err := timezone.ParseTimestamp(formatted)
//
// The timezone is configured via the APP_TIMEZONE environment variable and
// defaults to UTC. It is initialized when the package is imported.
package timezone
