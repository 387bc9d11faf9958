// Package docview provides the in-memory model behind a documentation
// browser. It loads a pre-generated tree of library, class and member
// metadata, addresses every entity with a canonical location string, and
// resolves navigation requests to the page that should be displayed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, yaml/, goquery/).
package docview
