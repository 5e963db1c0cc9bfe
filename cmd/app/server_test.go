package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/0x0FACED/particle-voronoi/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *server {
	cfg := defaultConfig()
	cfg.Particles = 8
	cfg.Width, cfg.Height = 300, 200
	return newServer(cfg, logger.NewNop())
}

func post(s *server, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServerGet(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "echarts")
	assert.Contains(t, body, `"particles":"8"`)
	assert.NotEmpty(t, s.sweep.Diagram().VoronoiEdges)
}

func TestServerStepMovesParticles(t *testing.T) {
	s := testServer()
	before := s.system.Sites()

	rec := post(s, url.Values{"action": {"step"}, "show_voronoi": {"true"}, "show_delaunay": {"true"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, before, s.system.Sites())
	assert.Len(t, s.system.Particles, 8)
}

func TestServerRebuild(t *testing.T) {
	s := testServer()

	rec := post(s, url.Values{"particles": {"5"}, "layout": {"grid"}, "show_voronoi": {"true"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, s.system.Particles, 5)
	assert.Equal(t, "grid", s.cfg.Layout)
	assert.True(t, s.cfg.ShowVoronoi)
	assert.False(t, s.cfg.ShowDelaunay)
	assert.False(t, s.sweep.Diagram().ShowDelaunay)
}

func TestServerBadForm(t *testing.T) {
	s := testServer()

	rec := post(s, url.Values{"particles": {"many"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, w := range []string{"-1", "NaN", "Inf", "-Inf", "1e308"} {
		rec = post(s, url.Values{"width": {w}})
		assert.Equal(t, http.StatusBadRequest, rec.Code, "width=%s", w)
		assert.Equal(t, 300.0, s.cfg.Width)
	}

	rec = post(s, url.Values{"particles": {"100000000"}, "steps": {"0"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 8, s.cfg.Particles)
	assert.Len(t, s.system.Particles, 8)

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
