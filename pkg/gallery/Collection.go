package gallery

import (
	"time"

	"github.com/adampresley/catplayground/pkg/locator"
)

/*
Entry is a single generated item in a gallery. Only Locator ever changes
after creation.
*/
type Entry struct {
	ID         string
	Locator    string
	Text       string
	Tag        string
	Animated   bool
	DatabaseID string
	CreatedAt  time.Time
}

// Request returns the locator request this entry was created from.
func (e Entry) Request() locator.Request {
	return locator.Request{
		Animated:   e.Animated,
		Tag:        e.Tag,
		Text:       e.Text,
		DatabaseID: e.DatabaseID,
	}
}

/*
Collection is an ordered list of entries, newest first. Operations never
modify the receiver; they return a new collection.
*/
type Collection []Entry

func (c Collection) Prepend(e Entry) Collection {
	result := make(Collection, 0, len(c)+1)
	result = append(result, e)
	return append(result, c...)
}

/*
Replace returns a copy of the collection with the entry matching id swapped
for fn(entry). The boolean is false, and the receiver is returned as-is, when
no entry has that id.
*/
func (c Collection) Replace(id string, fn func(Entry) Entry) (Collection, bool) {
	index := c.IndexOf(id)

	if index < 0 {
		return c, false
	}

	result := make(Collection, len(c))
	copy(result, c)
	result[index] = fn(c[index])

	return result, true
}

func (c Collection) IndexOf(id string) int {
	for index, e := range c {
		if e.ID == id {
			return index
		}
	}

	return -1
}

// Number is the display number of the entry at index. The oldest entry is 1.
func (c Collection) Number(index int) int {
	return len(c) - index
}
