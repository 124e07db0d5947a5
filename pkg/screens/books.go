package screens

import (
	"fmt"

	"tableflip.dev/academia/pkg/app"
	"tableflip.dev/academia/pkg/appdata"
)

// Books is the reading list.
type Books struct {
	Books  app.Slice[[]appdata.Book]
	Labels *Labels
}

func (b *Books) Title() string { return b.Labels.Get(appdata.LabelBooksTitle) }

func bookID(v appdata.Book) string { return v.ID }

// Add puts a book on the to-read shelf.
func (b *Books) Add(title, author string) (appdata.Book, error) {
	title, err := required(title)
	if err != nil {
		return appdata.Book{}, err
	}
	book := appdata.Book{ID: newID(), Title: title, Author: author, Status: appdata.BookToRead}
	return book, b.Books.Update(func(prev []appdata.Book) []appdata.Book {
		return append(prev, book)
	})
}

// SetStatus moves book id to status.
func (b *Books) SetStatus(id string, status appdata.BookStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: book status %q", ErrInvalid, status)
	}
	return b.Books.Try(func(prev []appdata.Book) ([]appdata.Book, error) {
		return edit(prev, bookID, id, func(v *appdata.Book) error {
			v.Status = status
			return nil
		})
	})
}

func (b *Books) Delete(id string) error {
	return b.Books.Try(func(prev []appdata.Book) ([]appdata.Book, error) {
		return remove(prev, bookID, id)
	})
}

// Shelves groups the list by status.
func (b *Books) Shelves() map[appdata.BookStatus][]appdata.Book {
	out := map[appdata.BookStatus][]appdata.Book{}
	for _, v := range b.Books.Get() {
		out[v.Status] = append(out[v.Status], v)
	}
	return out
}
