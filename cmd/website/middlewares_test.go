package main

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adampresley/adamgokit/sessions"
	"github.com/adampresley/catplayground/cmd/website/internal/viewmodels"
	"github.com/adampresley/catplayground/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVisitorHandler(t *testing.T) (http.Handler, *[]string) {
	t.Helper()
	gob.Register(&models.Visitor{})

	cookieStore := sessions.NewCookieStore("test-secret-test-secret-test-sec")
	sessionService := sessions.NewSessionWrapper[*models.Visitor](cookieStore, "catplaygroundvisitors", "visitor")

	issued := 0
	seen := []string{}

	middleware := newVisitorMiddleware(sessionService, []string{"/static", "/heartbeat"}, func() string {
		issued++
		return fmt.Sprintf("visitor-%d", issued)
	})

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		visitor, err := viewmodels.GetVisitorFromContext(r)

		if err != nil {
			seen = append(seen, "")
			return
		}

		seen = append(seen, visitor.ID)
	}))

	return handler, &seen
}

func TestVisitorMiddleware_FirstVisitGetsIDAndReturnVisitKeepsIt(t *testing.T) {
	handler, seen := newTestVisitorHandler(t)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := first.Result().Cookies()
	require.NotEmpty(t, cookies, "first visit should set a session cookie")

	second := httptest.NewRequest(http.MethodPost, "/gallery/images/random", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}

	handler.ServeHTTP(httptest.NewRecorder(), second)

	assert.Equal(t, []string{"visitor-1", "visitor-1"}, *seen)
}

func TestVisitorMiddleware_VisitorsWithoutCookieAreDistinct(t *testing.T) {
	handler, seen := newTestVisitorHandler(t)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"visitor-1", "visitor-2"}, *seen)
}

func TestVisitorMiddleware_ExcludedPathsSkipVisitor(t *testing.T) {
	handler, seen := newTestVisitorHandler(t)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/css/main.css", nil))

	assert.Equal(t, []string{""}, *seen)
	assert.Empty(t, w.Result().Cookies())
}
