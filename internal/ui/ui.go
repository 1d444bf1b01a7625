package ui

import (
	"context"
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/Memetgms/kitapinceleme/internal/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	BookListView ViewState = iota
	DetailView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	catalog *views.Catalog
	detail  *views.Detail

	width  int
	height int

	bookList   list.Model
	hero       views.HeroBooks
	reviewList list.Model
	selected   *models.BookDetail

	err  error
	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided view-models.
func NewModel(ctx context.Context, catalog *views.Catalog, detail *views.Detail) *Model {
	return &Model{
		ctx:     ctx,
		view:    BookListView,
		catalog: catalog,
		detail:  detail,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by fetching the catalog.
func (m *Model) Init() tea.Cmd {
	return m.fetchCatalog()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.bookList.Width() == 0 {
			m.bookList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.reviewList.Width() == 0 {
			m.reviewList.SetSize(msg.Width-4, msg.Height-12)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case BookListView:
			return m.handleBookListKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		}

	case catalogFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.hero = msg.hero
		items := make([]list.Item, len(msg.books))
		for i, book := range msg.books {
			items[i] = bookItem{book: book, genreName: m.catalog.GenreName(book.GenreID)}
		}
		m.bookList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.bookList.Title = "Catalog"
		m.bookList.SetSize(m.width-4, m.height-8)
		return m, nil

	case detailFetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.view = BookListView
			return m, nil
		}
		m.selected = msg.detail
		items := make([]list.Item, len(msg.detail.Reviews))
		for i, review := range msg.detail.Reviews {
			items[i] = reviewItem{review: review}
		}
		m.reviewList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.reviewList.Title = fmt.Sprintf("Reviews of '%s'", msg.detail.Title)
		m.reviewList.SetSize(m.width-4, m.height-12)
		m.view = DetailView
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case BookListView:
		return m.renderBookList()
	case DetailView:
		return m.renderDetail()
	default:
		return ""
	}
}

func (m *Model) handleBookListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list's filter input is active, every key belongs to it.
	if m.bookList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.bookList, cmd = m.bookList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.bookList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(bookItem); ok {
				return m, m.fetchDetail(item.book.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.bookList, cmd = m.bookList.Update(msg)
	return m, cmd
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = BookListView
		m.selected = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.reviewList, cmd = m.reviewList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case BookListView:
		m.bookList, cmd = m.bookList.Update(msg)
	case DetailView:
		m.reviewList, cmd = m.reviewList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchCatalog() tea.Cmd {
	return func() tea.Msg {
		if err := m.catalog.LoadGenres(m.ctx); err != nil {
			return catalogFetchedMsg{err: err}
		}
		if err := m.catalog.LoadAll(m.ctx); err != nil {
			return catalogFetchedMsg{err: err}
		}
		// Hero failures degrade to an empty banner rather than killing the TUI.
		hero, _ := m.catalog.Hero(m.ctx)
		return catalogFetchedMsg{books: m.catalog.Apply(), genres: m.catalog.Genres, hero: hero}
	}
}

func (m *Model) fetchDetail(bookID int) tea.Cmd {
	return func() tea.Msg {
		err := m.detail.Load(m.ctx, bookID)
		return detailFetchedMsg{detail: m.detail.Book, err: err}
	}
}

func (m *Model) renderBookList() string {
	var banner string
	if m.hero.Popular != nil {
		banner = styles.ok.Render(fmt.Sprintf("Most popular: %s — %s", m.hero.Popular.Title, m.hero.Popular.Author))
	}
	if m.hero.Favorite != nil {
		if banner != "" {
			banner += "\n"
		}
		banner += styles.warn.Render(fmt.Sprintf("Most favorited: %s — %s", m.hero.Favorite.Title, m.hero.Favorite.Author))
	}
	if banner != "" {
		banner += "\n\n"
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", banner, m.bookList.View(), helpView)
}

func (m *Model) renderDetail() string {
	title := styles.title.Render(fmt.Sprintf("%s — %s", m.selected.Title, m.selected.Author))
	info := fmt.Sprintf(
		"Genre: %s\nPrice: %s\nPublished: %s\nRating: %s\n\n%s\n",
		m.selected.GenreName,
		shared.FormatPrice(m.selected.Price),
		shared.FormatDate(m.selected.PublishedDate),
		views.RatingLabel(m.selected.Reviews),
		shared.TruncateText(m.selected.Description, 300),
	)

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, info, m.reviewList.View(), helpView)
}
