package home

import (
	"fmt"
	"net/http/httptest"
	"testing"

	internalmodels "github.com/adampresley/catplayground/cmd/website/internal/models"
	"github.com/adampresley/catplayground/pkg/gallery"
	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/adampresley/catplayground/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPageBuilder(catalog *models.CatalogSnapshot) (PageBuilder, locator.Builder) {
	token := 0
	builder := locator.NewBuilder(locator.BuilderConfig{
		Token: func() string {
			token++
			return fmt.Sprint(token)
		},
	})

	return NewPageBuilder(PageBuilderConfig{
		Builder:       builder,
		Catalog:       catalog,
		QuickTagCount: 2,
	}), builder
}

func TestPageBuilder_Build(t *testing.T) {
	catalog := &models.CatalogSnapshot{
		Tags:       []string{"cute", "orange", "sleepy"},
		TotalCount: 1907,
		Sample: []models.CatalogRecord{
			{ID: "abc", Tags: []string{"a", "b", "c", "d"}},
		},
	}

	b, builder := newTestPageBuilder(catalog)
	store := gallery.NewStore(gallery.StoreConfig{Builder: builder})
	store.InsertRandom(true)
	store.InsertWithTag("cute", true)

	r := httptest.NewRequest("GET", "/?tab=gifs", nil)
	page := b.Build(r, "gifs", store)

	assert.Equal(t, "gifs", page.Tab)
	assert.Equal(t, 1907, page.Stats.TotalCount)
	assert.Equal(t, 3, page.Stats.TagCount)
	assert.Equal(t, "Connected", page.Stats.Status)
	assert.Equal(t, []string{"cute", "orange"}, page.QuickTags)

	assert.False(t, page.Images.Active)
	assert.Empty(t, page.Images.Items)

	require.Len(t, page.Gifs.Items, 2)
	assert.True(t, page.Gifs.Active)
	assert.Equal(t, internalmodels.KindGifs, page.Gifs.Kind)
	assert.Equal(t, 2, page.Gifs.Items[0].Number)
	assert.Equal(t, "cute", page.Gifs.Items[0].Tag)
	assert.Equal(t, 1, page.Gifs.Items[1].Number)

	require.Len(t, page.Sample, 1)
	assert.Equal(t, "/catalog/abc/thumbnail", page.Sample[0].ThumbnailURL)
	assert.Equal(t, "https://cataas.com/cat/abc", page.Sample[0].FullURL)
	assert.Equal(t, []string{"a", "b", "c"}, page.Sample[0].Tags)
}

func TestPageBuilder_BuildDegradedAndDefaults(t *testing.T) {
	b, _ := newTestPageBuilder(&models.CatalogSnapshot{Failures: []string{"count"}})

	r := httptest.NewRequest("GET", "/", nil)
	page := b.Build(r, "nonsense", nil)

	assert.Equal(t, internalmodels.KindImages, page.Tab)
	assert.True(t, page.Images.Active)
	assert.Equal(t, "Degraded (1 of 3 unavailable)", page.Stats.Status)
	assert.Empty(t, page.Images.Items)
	assert.Empty(t, page.Gifs.Items)
	assert.Empty(t, page.Sample)
}

func TestIsAnimatedKind(t *testing.T) {
	animated, ok := internalmodels.IsAnimatedKind("gifs")
	assert.True(t, ok)
	assert.True(t, animated)

	animated, ok = internalmodels.IsAnimatedKind("images")
	assert.True(t, ok)
	assert.False(t, animated)

	_, ok = internalmodels.IsAnimatedKind("browse")
	assert.False(t, ok)

	assert.Equal(t, "gifs", internalmodels.KindOf(true))
	assert.Equal(t, "images", internalmodels.KindOf(false))
}
