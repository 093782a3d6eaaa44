package cartControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vojniknikola-ui/strojopromet-api/gateway"
	"github.com/vojniknikola-ui/strojopromet-api/models"
)

type memBlob struct {
	data map[string][]byte
}

func (b *memBlob) Exists(ctx context.Context, name string) (bool, error) {
	_, ok := b.data[name]
	return ok, nil
}

func (b *memBlob) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, ok := b.data[name]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (b *memBlob) Put(ctx context.Context, name string, data []byte) error {
	b.data[name] = data
	return nil
}

func (b *memBlob) Delete(ctx context.Context, name string) error {
	delete(b.data, name)
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *memBlob) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	blob := &memBlob{data: map[string][]byte{}}
	gw := gateway.NewGateway(blob, nil)

	r := gin.New()
	r.GET("/api/cart", GetCart(gw))
	r.POST("/api/cart", SaveCart(gw))
	r.DELETE("/api/cart", ClearCart(gw))
	r.GET("/api/cart/order-links", OrderLinks(gw, "38761234567"))
	return r, blob
}

func cartCookie(t *testing.T, resp *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range resp.Result().Cookies() {
		if ck.Name == "cartId" {
			return ck
		}
	}
	t.Fatal("cartId cookie not set")
	return nil
}

func postCart(t *testing.T, r *gin.Engine, lines []models.CartLine) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(lines)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGetCart_NoCookieReturnsEmptyArray(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, "[]", resp.Body.String())
}

func TestSaveCart_SetsCookieAndPersists(t *testing.T) {
	r, _ := newTestRouter(t)
	lines := []models.CartLine{
		{PartID: 1, Name: "Filter", CatalogNumber: "X1", PriceInclVAT: 45.50, Quantity: 2},
	}

	resp := postCart(t, r, lines)
	require.Equal(t, http.StatusOK, resp.Code)
	require.JSONEq(t, `{"success":true}`, resp.Body.String())

	ck := cartCookie(t, resp)
	require.True(t, ck.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	require.Equal(t, 30*24*60*60, ck.MaxAge)

	// Round trip with the issued cookie.
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(ck)
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, req)

	var got []models.CartLine
	require.NoError(t, json.Unmarshal(getResp.Body.Bytes(), &got))
	require.Equal(t, lines, got)
}

func TestSaveCart_ReusesExistingCookie(t *testing.T) {
	r, blob := newTestRouter(t)

	first := postCart(t, r, []models.CartLine{{PartID: 1, Name: "Filter", Quantity: 1}})
	ck := cartCookie(t, first)

	body, err := json.Marshal([]models.CartLine{{PartID: 1, Name: "Filter", Quantity: 3}})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(ck)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, ck.Value, cartCookie(t, resp).Value)
	require.Len(t, blob.data, 1)
}

func TestSaveCart_InvalidBodyIsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cart", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClearCart_DeletesAndClearsCookie(t *testing.T) {
	r, blob := newTestRouter(t)
	saved := postCart(t, r, []models.CartLine{{PartID: 1, Name: "Filter", Quantity: 1}})
	ck := cartCookie(t, saved)
	require.Len(t, blob.data, 1)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	req.AddCookie(ck)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Empty(t, blob.data)
	cleared := cartCookie(t, resp)
	require.Less(t, cleared.MaxAge, 0)

	// A subsequent read with the stale cookie finds nothing.
	getReq := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	getReq.AddCookie(ck)
	getResp := httptest.NewRecorder()
	r.ServeHTTP(getResp, getReq)
	require.JSONEq(t, "[]", getResp.Body.String())
}

func TestOrderLinks_EmptyCartIsBadRequest(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/order-links", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestOrderLinks_ComposesMessageAndLinks(t *testing.T) {
	r, _ := newTestRouter(t)
	saved := postCart(t, r, []models.CartLine{
		{PartID: 1, Name: "Filter", CatalogNumber: "X1", PriceInclVAT: 45.50, Quantity: 2},
	})
	ck := cartCookie(t, saved)

	req := httptest.NewRequest(http.MethodGet, "/api/cart/order-links", nil)
	req.AddCookie(ck)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	var out struct {
		Message  string `json:"message"`
		WhatsApp string `json:"whatsapp"`
		Viber    string `json:"viber"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Contains(t, out.Message, "Filter (X1) - 2 kom x 45.50 BAM = 91.00 BAM")
	require.Contains(t, out.WhatsApp, "https://wa.me/38761234567?text=")
	require.Contains(t, out.Viber, "viber://forward?text=")
}
