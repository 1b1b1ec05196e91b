package gallery

import (
	"strings"
	"time"

	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/google/uuid"
)

/*
InsertResult reports the outcome of an insert. ConsumedInput tells the caller
that the text it supplied was used and its pending input can be reset.
*/
type InsertResult struct {
	Entry         Entry
	Inserted      bool
	ConsumedInput bool
}

type StoreConfig struct {
	Builder locator.Builder
	NewID   func() string
	Now     func() time.Time

	/*
	 * Optional starting contents, e.g. when restoring a visitor's galleries.
	 */
	Images Collection
	Gifs   Collection
}

/*
Store holds the static image and animated GIF galleries. Every operation
targets one collection and replaces it wholesale.
*/
type Store struct {
	builder locator.Builder
	newID   func() string
	now     func() time.Time
	images  Collection
	gifs    Collection
}

func NewStore(config StoreConfig) *Store {
	if config.NewID == nil {
		config.NewID = uuid.NewString
	}

	if config.Now == nil {
		config.Now = time.Now
	}

	return &Store{
		builder: config.Builder,
		newID:   config.NewID,
		now:     config.Now,
		images:  config.Images,
		gifs:    config.Gifs,
	}
}

func (s *Store) Collection(animated bool) Collection {
	if animated {
		return s.gifs
	}

	return s.images
}

func (s *Store) set(animated bool, c Collection) {
	if animated {
		s.gifs = c
		return
	}

	s.images = c
}

func (s *Store) InsertRandom(animated bool) InsertResult {
	return s.insert(Entry{
		Locator:  s.builder.Random(animated),
		Animated: animated,
	}, false)
}

func (s *Store) InsertWithText(text string, animated bool) InsertResult {
	if isBlank(text) {
		return InsertResult{}
	}

	return s.insert(Entry{
		Locator:  s.builder.WithText(text, animated),
		Text:     text,
		Animated: animated,
	}, true)
}

func (s *Store) InsertWithTag(tag string, animated bool) InsertResult {
	if isBlank(tag) {
		return InsertResult{}
	}

	return s.insert(Entry{
		Locator:  s.builder.WithTag(tag, animated),
		Tag:      tag,
		Animated: animated,
	}, false)
}

func (s *Store) InsertWithTagAndText(tag, text string, animated bool) InsertResult {
	if isBlank(tag) || isBlank(text) {
		return InsertResult{}
	}

	return s.insert(Entry{
		Locator:  s.builder.WithTagAndText(tag, text, animated),
		Tag:      tag,
		Text:     text,
		Animated: animated,
	}, true)
}

/*
InsertByDatabaseID pins a catalog record. It always lands in the static
collection, even when the record itself is animated.
*/
func (s *Store) InsertByDatabaseID(id string) InsertResult {
	if isBlank(id) {
		return InsertResult{}
	}

	return s.insert(Entry{
		Locator:    s.builder.ByDatabaseID(id),
		DatabaseID: id,
	}, false)
}

/*
Refresh gives the entry a fresh locator built from its own fields. Returns
false when the collection has no entry with that id.
*/
func (s *Store) Refresh(id string, animated bool) bool {
	updated, ok := s.Collection(animated).Replace(id, func(e Entry) Entry {
		e.Locator = s.builder.Refresh(e.Request())
		return e
	})

	if ok {
		s.set(animated, updated)
	}

	return ok
}

func (s *Store) Clear(animated bool) {
	s.set(animated, Collection{})
}

func (s *Store) insert(e Entry, consumesInput bool) InsertResult {
	e.ID = s.newID()
	e.CreatedAt = s.now().UTC()
	s.set(e.Animated, s.Collection(e.Animated).Prepend(e))

	return InsertResult{
		Entry:         e,
		Inserted:      true,
		ConsumedInput: consumesInput,
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
