package ui

import (
	"fmt"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/shared"
	"github.com/charmbracelet/bubbles/list"
)

var (
	_ list.Item = bookItem{}
	_ list.Item = reviewItem{}
)

// bookItem wraps [models.Book] to implement [list.Item].
type bookItem struct {
	book      models.Book
	genreName string
}

func (i bookItem) FilterValue() string { return i.book.Title + " " + i.book.Author }
func (i bookItem) Title() string       { return i.book.Title }
func (i bookItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.book.Author, shared.FormatPrice(i.book.Price))
	if i.genreName != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.genreName)
	}
	return desc
}

// reviewItem wraps [models.Review] to implement [list.Item].
type reviewItem struct {
	review models.Review
}

func (i reviewItem) FilterValue() string { return i.review.UserName }
func (i reviewItem) Title() string {
	return fmt.Sprintf("%s — %d/5", i.review.UserName, i.review.Rating)
}
func (i reviewItem) Description() string {
	return shared.TruncateText(i.review.Comment, 80)
}
