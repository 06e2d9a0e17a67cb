package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/aixtraball/pinadmin/internal/model"
)

type CatalogSuite struct {
	suite.Suite
	server  *httptest.Server
	handler http.HandlerFunc
	lastURL string
	ctx     context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastURL = r.URL.String()
		s.handler(w, r)
	}))
	s.ctx = context.Background()
}

func (s *CatalogSuite) TearDownTest() {
	s.server.Close()
}

func (s *CatalogSuite) TestSearch() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/search", r.URL.Path)
		s.Equal("medieval", r.URL.Query().Get("q"))
		s.Equal("0", r.URL.Query().Get("include_groups"))
		s.Equal("1", r.URL.Query().Get("include_aliases"))
		s.Equal("token-123", r.URL.Query().Get("api_token"))
		_, _ = w.Write([]byte(`[{"opdb_id":"G1","name":"Medieval Madness","shortname":"MM"}]`))
	}

	c := NewCatalog(s.server.URL, "token-123")
	results, err := c.Search(s.ctx, "medieval")

	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal(model.CatalogMachine{ID: "G1", Name: "Medieval Madness", Shortname: "MM"}, results[0])
}

func (s *CatalogSuite) TestSearchWithoutTokenOmitsParam() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.False(r.URL.Query().Has("api_token"))
		_, _ = w.Write([]byte(`[]`))
	}

	c := NewCatalog(s.server.URL, "")
	_, err := c.Search(s.ctx, "medieval")

	s.NoError(err)
}

func (s *CatalogSuite) TestSearchErrorStatus() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}

	c := NewCatalog(s.server.URL, "bad-token")
	_, err := c.Search(s.ctx, "medieval")

	s.Require().Error(err)
	var terr *model.TransportError
	s.Require().ErrorAs(err, &terr)
	s.Equal(http.StatusUnauthorized, terr.Status)
}
