package models

import "time"

/*
GalleryEntry is the stored form of a gallery item for one visitor. Position is
the display number; the newest entry has the highest position.
*/
type GalleryEntry struct {
	VisitorID  string    `db:"visitor_id"`
	Animated   bool      `db:"animated"`
	Position   int       `db:"position"`
	ID         string    `db:"id"`
	Locator    string    `db:"locator"`
	Text       string    `db:"text"`
	Tag        string    `db:"tag"`
	DatabaseID string    `db:"database_id"`
	CreatedAt  time.Time `db:"created_at"`
}
