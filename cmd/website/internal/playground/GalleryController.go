package playground

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/catplayground/cmd/website/internal/home"
	internalmodels "github.com/adampresley/catplayground/cmd/website/internal/models"
	"github.com/adampresley/catplayground/cmd/website/internal/viewmodels"
	"github.com/adampresley/catplayground/pkg/gallery"
	"github.com/adampresley/catplayground/pkg/services"
)

type GalleryHandlers interface {
	InsertRandom(w http.ResponseWriter, r *http.Request)
	InsertWithText(w http.ResponseWriter, r *http.Request)
	InsertWithTag(w http.ResponseWriter, r *http.Request)
	InsertWithTagAndText(w http.ResponseWriter, r *http.Request)
	InsertByDatabaseID(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Clear(w http.ResponseWriter, r *http.Request)
}

type GalleryControllerConfig struct {
	GalleryService services.GalleryServicer
	PageBuilder    home.PageBuilder
	Renderer       rendering.TemplateRenderer
}

type GalleryController struct {
	galleryService services.GalleryServicer
	pageBuilder    home.PageBuilder
	renderer       rendering.TemplateRenderer
}

/*
actionResult is what every gallery action hands to render: the store after the
operation and the form values to echo back into the targeted tab.
*/
type actionResult struct {
	tab     string
	store   *gallery.Store
	pending viewmodels.PendingInput
	err     error
}

func NewGalleryController(config GalleryControllerConfig) GalleryController {
	return GalleryController{
		galleryService: config.GalleryService,
		pageBuilder:    config.PageBuilder,
		renderer:       config.Renderer,
	}
}

/*
POST /gallery/{kind}/random
*/
func (c GalleryController) InsertRandom(w http.ResponseWriter, r *http.Request) {
	kind, animated, ok := c.kind(w, r)
	if !ok {
		return
	}

	visitor, _ := viewmodels.GetVisitorFromContext(r)
	store, _, err := c.galleryService.InsertRandom(r.Context(), visitor.ID, animated)

	c.render(w, r, actionResult{tab: kind, store: store, err: err})
}

/*
POST /gallery/{kind}/text
*/
func (c GalleryController) InsertWithText(w http.ResponseWriter, r *http.Request) {
	kind, animated, ok := c.kind(w, r)
	if !ok {
		return
	}

	visitor, _ := viewmodels.GetVisitorFromContext(r)
	text := httphelpers.GetFromRequest[string](r, "text")

	store, result, err := c.galleryService.InsertWithText(r.Context(), visitor.ID, text, animated)
	pending := viewmodels.PendingInput{Text: text}

	if result.ConsumedInput {
		pending.Text = ""
	}

	c.render(w, r, actionResult{tab: kind, store: store, pending: pending, err: err})
}

/*
POST /gallery/{kind}/tag
*/
func (c GalleryController) InsertWithTag(w http.ResponseWriter, r *http.Request) {
	kind, animated, ok := c.kind(w, r)
	if !ok {
		return
	}

	visitor, _ := viewmodels.GetVisitorFromContext(r)
	tag := httphelpers.GetFromRequest[string](r, "tag")

	store, _, err := c.galleryService.InsertWithTag(r.Context(), visitor.ID, tag, animated)
	pending := viewmodels.PendingInput{SelectedTag: tag}

	c.render(w, r, actionResult{tab: kind, store: store, pending: pending, err: err})
}

/*
POST /gallery/{kind}/tag-text
*/
func (c GalleryController) InsertWithTagAndText(w http.ResponseWriter, r *http.Request) {
	kind, animated, ok := c.kind(w, r)
	if !ok {
		return
	}

	visitor, _ := viewmodels.GetVisitorFromContext(r)
	tag := httphelpers.GetFromRequest[string](r, "tag")
	text := httphelpers.GetFromRequest[string](r, "text")

	store, result, err := c.galleryService.InsertWithTagAndText(r.Context(), visitor.ID, tag, text, animated)
	pending := viewmodels.PendingInput{ComboTag: tag, ComboText: text}

	if result.ConsumedInput {
		pending.ComboText = ""
	}

	c.render(w, r, actionResult{tab: kind, store: store, pending: pending, err: err})
}

/*
POST /catalog/{id}/add
*/
func (c GalleryController) InsertByDatabaseID(w http.ResponseWriter, r *http.Request) {
	visitor, _ := viewmodels.GetVisitorFromContext(r)
	id := httphelpers.GetFromRequest[string](r, "id")

	store, _, err := c.galleryService.InsertByDatabaseID(r.Context(), visitor.ID, id)

	c.render(w, r, actionResult{tab: internalmodels.KindImages, store: store, err: err})
}

/*
POST /gallery/{kind}/{entryid}/refresh
*/
func (c GalleryController) Refresh(w http.ResponseWriter, r *http.Request) {
	kind, animated, ok := c.kind(w, r)
	if !ok {
		return
	}

	visitor, _ := viewmodels.GetVisitorFromContext(r)
	entryID := httphelpers.GetFromRequest[string](r, "entryid")

	store, err := c.galleryService.Refresh(r.Context(), visitor.ID, entryID, animated)

	c.render(w, r, actionResult{tab: kind, store: store, err: err})
}

/*
POST /gallery/{kind}/clear
*/
func (c GalleryController) Clear(w http.ResponseWriter, r *http.Request) {
	kind, animated, ok := c.kind(w, r)
	if !ok {
		return
	}

	visitor, _ := viewmodels.GetVisitorFromContext(r)
	store, err := c.galleryService.Clear(r.Context(), visitor.ID, animated)

	c.render(w, r, actionResult{tab: kind, store: store, err: err})
}

func (c GalleryController) kind(w http.ResponseWriter, r *http.Request) (string, bool, bool) {
	kind := httphelpers.GetFromRequest[string](r, "kind")
	animated, ok := internalmodels.IsAnimatedKind(kind)

	if !ok {
		httphelpers.WriteText(w, http.StatusNotFound, "unknown gallery")
		return "", false, false
	}

	return kind, animated, true
}

func (c GalleryController) render(w http.ResponseWriter, r *http.Request, result actionResult) {
	pageName := "pages/home"

	if result.err != nil {
		visitor, _ := viewmodels.GetVisitorFromContext(r)
		slog.Error("error updating gallery", "error", result.err, "visitorID", visitor.ID, "tab", result.tab)

		viewData := c.pageBuilder.Build(r, result.tab, nil)
		viewData.IsError = true
		viewData.Message = "There was a problem updating your gallery. Please try again."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData := c.pageBuilder.Build(r, result.tab, result.store)

	if result.tab == internalmodels.KindGifs {
		viewData.Gifs.Form = result.pending
	} else {
		viewData.Images.Form = result.pending
	}

	c.renderer.Render(pageName, viewData, w)
}
