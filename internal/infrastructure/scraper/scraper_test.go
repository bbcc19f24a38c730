package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecolens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productPage = `<!DOCTYPE html>
<html><body>
  <span id="productTitle">
    Bamboo Cutting Board with Juice Groove
  </span>
  <div id="bylineInfo">Visit the GreenKitchen Store</div>
  <div class="a-price"><span class="a-offscreen">$24.99</span></div>
  <span class="a-icon-alt">4.7 out of 5 stars</span>
  <div id="productDescription">
    Made from organic bamboo. Ships in recyclable packaging.
  </div>
  <img id="landingImage" src="https://example.com/board.jpg"/>
</body></html>`

func TestScrapeProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(productPage))
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, "test-agent")
	record, err := s.ScrapeProduct(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Bamboo Cutting Board with Juice Groove", record.Title)
	assert.Equal(t, "$24.99", record.Price)
	assert.Equal(t, "GreenKitchen", record.Brand)
	assert.Equal(t, "4.7 out of 5 stars", record.Rating)
	assert.Contains(t, record.Description, "organic bamboo")
	assert.Equal(t, "https://example.com/board.jpg", record.ImageURL)
	assert.Equal(t, server.URL, record.URL)
}

func TestScrapeProduct_LegacyPriceBlock(t *testing.T) {
	page := `<html><body>
	  <span id="productTitle">Old Layout Product</span>
	  <span id="priceblock_ourprice">$9.49</span>
	  <div id="feature-bullets"><ul><li>Feature one</li><li>Feature two</li></ul></div>
	</body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, "test-agent")
	record, err := s.ScrapeProduct(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "$9.49", record.Price)
	assert.Equal(t, "Feature one Feature two", record.Description)
}

func TestScrapeProduct_MissingTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>not a product page</p></body></html>`))
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, "test-agent")
	_, err := s.ScrapeProduct(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScrapeFailed))
	assert.True(t, errors.Is(err, domain.ErrMissingTitle))
}

func TestScrapeProduct_RetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(productPage))
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, "test-agent")
	record, err := s.ScrapeProduct(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, "Bamboo Cutting Board with Juice Groove", record.Title)
}

func TestScrapeProduct_GivesUpAfterThreeAttempts(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	s := NewScraper(5*time.Second, "test-agent")
	_, err := s.ScrapeProduct(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrScrapeFailed))
	assert.Equal(t, 3, attempts)
}

func TestExtractBrand(t *testing.T) {
	tests := []struct {
		name   string
		byline string
		want   string
	}{
		{"storefront byline", "Visit the GreenKitchen Store", "GreenKitchen"},
		{"brand prefix", "Brand: GreenKitchen", "GreenKitchen"},
		{"bare brand", "GreenKitchen", "GreenKitchen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`<html><body><span id="productTitle">X Y</span><div id="bylineInfo">` + tt.byline + `</div></body></html>`))
			}))
			defer server.Close()

			s := NewScraper(5*time.Second, "test-agent")
			record, err := s.ScrapeProduct(context.Background(), server.URL)
			require.NoError(t, err)
			assert.Equal(t, tt.want, record.Brand)
		})
	}
}
