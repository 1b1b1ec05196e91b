package home

import (
	"fmt"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/slices"
	internalmodels "github.com/adampresley/catplayground/cmd/website/internal/models"
	"github.com/adampresley/catplayground/cmd/website/internal/viewmodels"
	"github.com/adampresley/catplayground/pkg/gallery"
	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/adampresley/catplayground/pkg/models"
)

const (
	sampleTagCount = 3
)

type PageBuilderConfig struct {
	Builder       locator.Builder
	Catalog       *models.CatalogSnapshot
	QuickTagCount int
}

/*
PageBuilder assembles the home page view model. Every controller that
re-renders the playground goes through it so the page looks the same after
any action.
*/
type PageBuilder struct {
	builder       locator.Builder
	catalog       *models.CatalogSnapshot
	quickTagCount int
}

func NewPageBuilder(config PageBuilderConfig) PageBuilder {
	if config.Catalog == nil {
		config.Catalog = &models.CatalogSnapshot{}
	}

	return PageBuilder{
		builder:       config.Builder,
		catalog:       config.Catalog,
		quickTagCount: config.QuickTagCount,
	}
}

/*
Build returns the page for the given store. A nil store renders both
galleries empty.
*/
func (b PageBuilder) Build(r *http.Request, tab string, store *gallery.Store) viewmodels.HomePage {
	if _, ok := internalmodels.IsAnimatedKind(tab); !ok && tab != internalmodels.TabBrowse {
		tab = internalmodels.KindImages
	}

	if store == nil {
		store = gallery.NewStore(gallery.StoreConfig{Builder: b.builder})
	}

	status := "Connected"

	if b.catalog.HasFailures() {
		status = fmt.Sprintf("Degraded (%d of 3 unavailable)", len(b.catalog.Failures))
	}

	return viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/home.js"},
			},
		},
		Tab: tab,
		Stats: viewmodels.CatalogStats{
			TotalCount: b.catalog.TotalCount,
			TagCount:   len(b.catalog.Tags),
			Status:     status,
		},
		Tags:      b.catalog.Tags,
		QuickTags: b.catalog.QuickTags(b.quickTagCount),
		Images:    b.galleryTab(store, false, tab),
		Gifs:      b.galleryTab(store, true, tab),
		Sample: slices.Map(b.catalog.Sample, func(input models.CatalogRecord, index int) internalmodels.SampleItem {
			return internalmodels.SampleItem{
				ID:           input.ID,
				ThumbnailURL: fmt.Sprintf("/catalog/%s/thumbnail", input.ID),
				FullURL:      b.builder.ByDatabaseID(input.ID),
				Tags:         input.TopTags(sampleTagCount),
			}
		}),
	}
}

func (b PageBuilder) galleryTab(store *gallery.Store, animated bool, activeTab string) viewmodels.GalleryTab {
	collection := store.Collection(animated)
	kind := internalmodels.KindOf(animated)

	title := "Images"
	if animated {
		title = "GIFs"
	}

	return viewmodels.GalleryTab{
		Kind:      kind,
		Title:     title,
		Active:    kind == activeTab,
		Tags:      b.catalog.Tags,
		QuickTags: b.catalog.QuickTags(b.quickTagCount),
		Items: slices.Map(collection, func(input gallery.Entry, index int) internalmodels.GalleryItem {
			return internalmodels.GalleryItem{
				ID:         input.ID,
				Kind:       kind,
				Number:     collection.Number(index),
				Locator:    input.Locator,
				Text:       input.Text,
				Tag:        input.Tag,
				DatabaseID: input.DatabaseID,
			}
		}),
	}
}
