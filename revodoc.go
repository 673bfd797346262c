// Package revodoc provides the data layer for the Revo documentation site:
// a cached client for the project's GitHub releases and troubleshooting
// issues, and a filter engine for browsing known fixes by category and
// free-text query.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, github/, blackfriday/).
package revodoc
