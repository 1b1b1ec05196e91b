package viewmodels

import (
	"net/http"

	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/catplayground/pkg/models"
)

type BaseViewModel struct {
	Message            string
	IsError            bool
	IsWarning          bool
	IsHtmx             bool
	JavascriptIncludes []rendering.JavascriptInclude
}

func GetVisitorFromContext(r *http.Request) (*models.Visitor, error) {
	if result, ok := r.Context().Value("visitor").(*models.Visitor); ok && result.ID != "" {
		return result, nil
	}

	return &models.Visitor{}, models.ErrVisitorNotFound
}
