// Package logtail reads the tail of shelf's own log file for the in-app log
// view.
//
// Tail keeps a ring buffer of the last N lines so memory stays bounded no
// matter how large the file grows. Each line is classified by Level so the
// UI can color fetch failures and cover problems without parsing log text
// itself.
//
// Lines are expected in the standard library log format with the prefix set
// by tea.LogToFile:
//
//	shelf 2026/10/19 14:32:15 catalog: loaded 24 books from http://127.0.0.1:4000/graphql
//	shelf 2026/10/19 14:32:16 covers: resolve cover "assets/x.webp": file does not exist
//
// A missing log file is not an error; Tail returns no lines.
package logtail
