// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view browse workflow for the catalog:
//  1. [BookListView] : Browse, filter and select books, with the hero banner on top
//  2. [DetailView] : Book metadata, the computed rating label and the review list
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern,
// with fetches running as [tea.Cmd] functions that resolve to typed messages.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
