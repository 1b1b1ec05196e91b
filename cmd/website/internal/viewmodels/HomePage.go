package viewmodels

import (
	internalmodels "github.com/adampresley/catplayground/cmd/website/internal/models"
)

type HomePage struct {
	BaseViewModel

	Tab       string
	Stats     CatalogStats
	Tags      []string
	QuickTags []string
	Images    GalleryTab
	Gifs      GalleryTab
	Sample    []internalmodels.SampleItem
}

type CatalogStats struct {
	TotalCount int
	TagCount   int
	Status     string
}

/*
GalleryTab is one of the two gallery tabs along with the pending values of
its input forms.
*/
type GalleryTab struct {
	Kind      string
	Title     string
	Active    bool
	Items     []internalmodels.GalleryItem
	Form      PendingInput
	Tags      []string
	QuickTags []string
}

type PendingInput struct {
	Text        string
	SelectedTag string
	ComboTag    string
	ComboText   string
}
