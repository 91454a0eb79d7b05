// pkg/storefront/storefront_test.go
package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogClient_ListProducts(t *testing.T) {
	var gotCategory string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		gotCategory = r.URL.Query().Get("category")
		json.NewEncoder(w).Encode([]Product{
			{ID: 1, Name: "Playera Tlaxcala", Price: "$25.00", Category: "ropa"},
			{ID: 2, Name: "Taza de Talavera", Price: "$15.00", Category: "artesania"},
		})
	}))
	defer server.Close()

	catalog := NewCatalogClient(NewClient(server.URL, nil))

	products, err := catalog.ListProducts(context.Background(), "ropa")
	require.NoError(t, err)
	assert.Equal(t, "ropa", gotCategory)
	require.Len(t, products, 2)
	assert.Equal(t, "Playera Tlaxcala", products[0].Name)
	assert.Equal(t, "$25.00", products[0].Price)
}

func TestCatalogClient_GetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "product not found"})
	}))
	defer server.Close()

	catalog := NewCatalogClient(NewClient(server.URL, nil))

	_, err := catalog.GetProduct(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")
}

func TestCheckoutInitiator_StartCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/checkout", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Items []CheckoutItem `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Items, 1)
		assert.Equal(t, "$25.00", req.Items[0].Price)

		json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/session/abc"})
	}))
	defer server.Close()

	initiator := NewCheckoutInitiator(NewClient(server.URL, nil))

	url, err := initiator.StartCheckout(context.Background(), []CheckoutItem{
		{Name: "Playera Tlaxcala", Price: "$25.00", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/abc", url)
}

func TestCheckoutInitiator_EmptyCartAllowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Items []CheckoutItem `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotNil(t, req.Items)
		assert.Empty(t, req.Items)
		json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example.com/session/empty"})
	}))
	defer server.Close()

	initiator := NewCheckoutInitiator(NewClient(server.URL, nil))

	url, err := initiator.StartCheckout(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/empty", url)
}

func TestNFCClient_TagContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/nfc-content/tag-42", r.URL.Path)
		json.NewEncoder(w).Encode(TagContent{
			Title:       "Tlaxcala",
			Description: "El estado más pequeño de México.",
			Facts:       []string{"Cuna de la nación"},
		})
	}))
	defer server.Close()

	nfc := NewNFCClient(NewClient(server.URL, nil))

	content, err := nfc.TagContent(context.Background(), "tag-42")
	require.NoError(t, err)
	assert.Equal(t, "Tlaxcala", content.Title)
	assert.Equal(t, []string{"Cuna de la nación"}, content.Facts)
}

func TestNFCClient_UploadTagMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/upload/tag-42", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		photo, _, err := r.FormFile("photo")
		require.NoError(t, err)
		photo.Close()

		video, _, err := r.FormFile("video")
		require.NoError(t, err)
		video.Close()

		json.NewEncoder(w).Encode(map[string]string{"message": "Media uploaded successfully"})
	}))
	defer server.Close()

	nfc := NewNFCClient(NewClient(server.URL, nil))

	err := nfc.UploadTagMedia(context.Background(), "tag-42",
		MediaFile{Name: "scan.jpg", Reader: strings.NewReader("jpeg-bytes")},
		MediaFile{Name: "scan.mp4", Reader: strings.NewReader("mp4-bytes")},
	)
	require.NoError(t, err)
}

func TestAdminClient_LoginFillsTokenSlot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "admin", req.Username)
			json.NewEncoder(w).Encode(map[string]string{"token": "opaque-token"})
		case "/api/admin/products":
			require.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode([]Product{})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	tokens := NewMemoryTokenStore()
	admin := NewAdminClient(NewClient(server.URL, nil), tokens)
	assert.False(t, admin.HasSession())

	require.NoError(t, admin.Login(context.Background(), "admin", "secret"))
	assert.True(t, admin.HasSession())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", stored)

	_, err = admin.ListProducts(context.Background())
	require.NoError(t, err)
}

func TestAdminClient_UnauthorizedClearsSlot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid or expired token"})
	}))
	defer server.Close()

	tokens := NewMemoryTokenStore()
	require.NoError(t, tokens.Save("stale-token"))
	admin := NewAdminClient(NewClient(server.URL, nil), tokens)
	require.True(t, admin.HasSession())

	_, err := admin.ListProducts(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, admin.HasSession())

	stored, err := tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestAdminClient_UploadProductImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/admin/upload-product-image", r.URL.Path)
		require.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, _, err := r.FormFile("productImage")
		require.NoError(t, err)
		file.Close()

		json.NewEncoder(w).Encode(map[string]string{"imageUrl": "/uploads/products/x.jpg"})
	}))
	defer server.Close()

	tokens := NewMemoryTokenStore()
	require.NoError(t, tokens.Save("opaque-token"))
	admin := NewAdminClient(NewClient(server.URL, nil), tokens)

	url, err := admin.UploadProductImage(context.Background(), MediaFile{
		Name:   "product.jpg",
		Reader: strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/products/x.jpg", url)
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("opaque-token"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
