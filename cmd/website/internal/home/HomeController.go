package home

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/catplayground/cmd/website/internal/viewmodels"
	"github.com/adampresley/catplayground/pkg/gallery"
	"github.com/adampresley/catplayground/pkg/locator"
	"github.com/adampresley/catplayground/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	Thumbnail(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	Builder          locator.Builder
	GalleryService   services.GalleryServicer
	PageBuilder      PageBuilder
	Renderer         rendering.TemplateRenderer
	ThumbnailService services.ThumbnailServicer
}

type HomeController struct {
	builder          locator.Builder
	galleryService   services.GalleryServicer
	pageBuilder      PageBuilder
	renderer         rendering.TemplateRenderer
	thumbnailService services.ThumbnailServicer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		builder:          config.Builder,
		galleryService:   config.GalleryService,
		pageBuilder:      config.PageBuilder,
		renderer:         config.Renderer,
		thumbnailService: config.ThumbnailService,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	var (
		err   error
		store *gallery.Store
	)

	pageName := "pages/home"
	tab := httphelpers.GetFromRequest[string](r, "tab")
	visitor, _ := viewmodels.GetVisitorFromContext(r)

	if store, err = c.galleryService.Get(r.Context(), visitor.ID); err != nil {
		slog.Error("error loading galleries", "error", err, "visitorID", visitor.ID)

		viewData := c.pageBuilder.Build(r, tab, nil)
		viewData.IsError = true
		viewData.Message = "There was a problem loading your galleries."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	viewData := c.pageBuilder.Build(r, tab, store)
	c.renderer.Render(pageName, viewData, w)
}

/*
GET /catalog/{id}/thumbnail
*/
func (c HomeController) Thumbnail(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		body []byte
	)

	id := httphelpers.GetFromRequest[string](r, "id")

	if body, err = c.thumbnailService.Thumbnail(r.Context(), id); err != nil {
		slog.Error("error creating thumbnail. sending original instead", "error", err, "id", id)
		http.Redirect(w, r, c.builder.ByDatabaseID(id), http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
