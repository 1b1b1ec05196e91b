package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adampresley/catplayground/pkg/gallery"
	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/adampresley/catplayground/pkg/models"
	"github.com/rfberaldo/sqlz"
)

/*
GalleryServicer applies gallery operations to a visitor's stored galleries.
Every method returns the visitor's store after the operation.
*/
type GalleryServicer interface {
	Get(ctx context.Context, visitorID string) (*gallery.Store, error)
	InsertRandom(ctx context.Context, visitorID string, animated bool) (*gallery.Store, gallery.InsertResult, error)
	InsertWithText(ctx context.Context, visitorID, text string, animated bool) (*gallery.Store, gallery.InsertResult, error)
	InsertWithTag(ctx context.Context, visitorID, tag string, animated bool) (*gallery.Store, gallery.InsertResult, error)
	InsertWithTagAndText(ctx context.Context, visitorID, tag, text string, animated bool) (*gallery.Store, gallery.InsertResult, error)
	InsertByDatabaseID(ctx context.Context, visitorID, databaseID string) (*gallery.Store, gallery.InsertResult, error)
	Refresh(ctx context.Context, visitorID, entryID string, animated bool) (*gallery.Store, error)
	Clear(ctx context.Context, visitorID string, animated bool) (*gallery.Store, error)
}

type GalleryServiceConfig struct {
	Builder locator.Builder
	DB      *sqlz.DB
	NewID   func() string
	Now     func() time.Time
}

type GalleryService struct {
	builder locator.Builder
	db      *sqlz.DB
	newID   func() string
	now     func() time.Time
	mu      *sync.Mutex
}

func NewGalleryService(config GalleryServiceConfig) GalleryService {
	return GalleryService{
		builder: config.Builder,
		db:      config.DB,
		newID:   config.NewID,
		now:     config.Now,
		mu:      &sync.Mutex{},
	}
}

func (s GalleryService) Get(ctx context.Context, visitorID string) (*gallery.Store, error) {
	return s.load(ctx, visitorID)
}

func (s GalleryService) InsertRandom(ctx context.Context, visitorID string, animated bool) (*gallery.Store, gallery.InsertResult, error) {
	return s.insert(ctx, visitorID, func(store *gallery.Store) gallery.InsertResult {
		return store.InsertRandom(animated)
	})
}

func (s GalleryService) InsertWithText(ctx context.Context, visitorID, text string, animated bool) (*gallery.Store, gallery.InsertResult, error) {
	return s.insert(ctx, visitorID, func(store *gallery.Store) gallery.InsertResult {
		return store.InsertWithText(text, animated)
	})
}

func (s GalleryService) InsertWithTag(ctx context.Context, visitorID, tag string, animated bool) (*gallery.Store, gallery.InsertResult, error) {
	return s.insert(ctx, visitorID, func(store *gallery.Store) gallery.InsertResult {
		return store.InsertWithTag(tag, animated)
	})
}

func (s GalleryService) InsertWithTagAndText(ctx context.Context, visitorID, tag, text string, animated bool) (*gallery.Store, gallery.InsertResult, error) {
	return s.insert(ctx, visitorID, func(store *gallery.Store) gallery.InsertResult {
		return store.InsertWithTagAndText(tag, text, animated)
	})
}

func (s GalleryService) InsertByDatabaseID(ctx context.Context, visitorID, databaseID string) (*gallery.Store, gallery.InsertResult, error) {
	return s.insert(ctx, visitorID, func(store *gallery.Store) gallery.InsertResult {
		return store.InsertByDatabaseID(databaseID)
	})
}

func (s GalleryService) Refresh(ctx context.Context, visitorID, entryID string, animated bool) (*gallery.Store, error) {
	var (
		err   error
		store *gallery.Store
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if store, err = s.load(ctx, visitorID); err != nil {
		return nil, err
	}

	if !store.Refresh(entryID, animated) {
		return store, nil
	}

	if err = s.save(ctx, visitorID, animated, store.Collection(animated)); err != nil {
		return nil, err
	}

	return store, nil
}

func (s GalleryService) Clear(ctx context.Context, visitorID string, animated bool) (*gallery.Store, error) {
	var (
		err   error
		store *gallery.Store
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if store, err = s.load(ctx, visitorID); err != nil {
		return nil, err
	}

	store.Clear(animated)

	if err = s.save(ctx, visitorID, animated, store.Collection(animated)); err != nil {
		return nil, err
	}

	return store, nil
}

func (s GalleryService) insert(ctx context.Context, visitorID string, op func(store *gallery.Store) gallery.InsertResult) (*gallery.Store, gallery.InsertResult, error) {
	var (
		err   error
		store *gallery.Store
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if store, err = s.load(ctx, visitorID); err != nil {
		return nil, gallery.InsertResult{}, err
	}

	result := op(store)

	if !result.Inserted {
		return store, result, nil
	}

	animated := result.Entry.Animated

	if err = s.save(ctx, visitorID, animated, store.Collection(animated)); err != nil {
		return nil, gallery.InsertResult{}, err
	}

	return store, result, nil
}

func (s GalleryService) load(ctx context.Context, visitorID string) (*gallery.Store, error) {
	var (
		err  error
		rows []models.GalleryEntry
	)

	sql := `
SELECT
   g.visitor_id
   , g.animated
   , g.position
   , g.id
   , g.locator
   , g.text
   , g.tag
   , g.database_id
   , g.created_at
FROM gallery_entries AS g
WHERE 1=1
   AND g.visitor_id=?
ORDER BY g.animated, g.position DESC
`

	queryCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err = s.db.Query(queryCtx, &rows, sql, visitorID); err != nil && !sqlz.IsNotFound(err) {
		return nil, fmt.Errorf("error querying gallery entries for visitor %s: %w", visitorID, err)
	}

	images := gallery.Collection{}
	gifs := gallery.Collection{}

	for _, row := range rows {
		entry := gallery.Entry{
			ID:         row.ID,
			Locator:    row.Locator,
			Text:       row.Text,
			Tag:        row.Tag,
			Animated:   row.Animated,
			DatabaseID: row.DatabaseID,
			CreatedAt:  row.CreatedAt,
		}

		if row.Animated {
			gifs = append(gifs, entry)
		} else {
			images = append(images, entry)
		}
	}

	return gallery.NewStore(gallery.StoreConfig{
		Builder: s.builder,
		NewID:   s.newID,
		Now:     s.now,
		Images:  images,
		Gifs:    gifs,
	}), nil
}

/*
save replaces every stored row of one collection with the given contents.
*/
func (s GalleryService) save(ctx context.Context, visitorID string, animated bool, c gallery.Collection) error {
	var (
		err error
	)

	queryCtx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	sql := `
DELETE FROM gallery_entries
WHERE 1=1
   AND visitor_id=?
   AND animated=?
`

	if _, err = s.db.Exec(queryCtx, sql, visitorID, animated); err != nil {
		return fmt.Errorf("error clearing gallery entries for visitor %s: %w", visitorID, err)
	}

	if len(c) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(c))
	params := make([]any, 0, len(c)*9)

	for index, e := range c {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?, ?, ?, ?)")
		params = append(params,
			visitorID,
			animated,
			c.Number(index),
			e.ID,
			e.Locator,
			e.Text,
			e.Tag,
			e.DatabaseID,
			e.CreatedAt,
		)
	}

	sql = `
INSERT INTO gallery_entries (
   visitor_id,
   animated,
   position,
   id,
   locator,
   text,
   tag,
   database_id,
   created_at
) VALUES ` + strings.Join(placeholders, ", ")

	if _, err = s.db.Exec(queryCtx, sql, params...); err != nil {
		return fmt.Errorf("error writing gallery entries for visitor %s: %w", visitorID, err)
	}

	return nil
}
