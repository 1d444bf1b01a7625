package ui

import (
	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/views"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	_ tea.Msg = catalogFetchedMsg{}
	_ tea.Msg = detailFetchedMsg{}
)

// catalogFetchedMsg carries the initial catalog, genre list and hero pair.
type catalogFetchedMsg struct {
	books  []models.Book
	genres []models.Genre
	hero   views.HeroBooks
	err    error
}

// detailFetchedMsg carries a book detail fetched on selection.
type detailFetchedMsg struct {
	detail *models.BookDetail
	err    error
}
