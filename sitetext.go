// Package sitetext extracts plain text from directory trees of
// pre-rendered documentation HTML, as produced by static-site
// generators like Sphinx or MkDocs. It locates the main-content
// subtree of each page, discards navigation, scripts, and other
// boilerplate, and emits text with paragraph structure preserved.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// trafilatura/, fs/).
package sitetext
