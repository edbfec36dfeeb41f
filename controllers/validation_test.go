package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// These paths reject the request before any database call is made, so they
// run against the offline router.

func TestCreateUserRequiresEmailAndPassword(t *testing.T) {
	r := offlineRouter(t)

	w := do(r, jsonRequest(t, http.MethodPost, "/user", map[string]any{"email": "a@x.com"}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, jsonRequest(t, http.MethodPost, "/user", map[string]any{"password": "p"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMalformedIDsRejected(t *testing.T) {
	r := offlineRouter(t)

	for _, url := range []string{
		"/product/not-a-hex-id",
		"/user/not-a-hex-id",
		"/comment/not-a-hex-id",
		"/cart/not-a-hex-id",
		"/order/not-a-hex-id",
	} {
		w := do(r, httptest.NewRequest(http.MethodGet, url, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, url)

		w = do(r, httptest.NewRequest(http.MethodDelete, url, nil))
		require.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestCreateProductRejectsBadDecimals(t *testing.T) {
	r := offlineRouter(t)

	req := multipartRequest(t, http.MethodPost, "/product",
		map[string]string{"description": "desk", "pricing": "cheap"}, "image")
	w := do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = multipartRequest(t, http.MethodPost, "/product",
		map[string]string{"description": "desk", "shippingCost": "free"}, "image")
	w = do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateWithNoFieldsRejected(t *testing.T) {
	r := offlineRouter(t)
	id := "0123456789abcdef01234567"

	w := do(r, multipartRequest(t, http.MethodPut, "/product/"+id, nil, "image"))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, jsonRequest(t, http.MethodPut, "/user/"+id, map[string]any{}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, jsonRequest(t, http.MethodPut, "/order/"+id, map[string]any{}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCommentRequiresMultipart(t *testing.T) {
	r := offlineRouter(t)

	w := do(r, jsonRequest(t, http.MethodPost, "/comment", map[string]any{"text": "nice"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCommentRejectsMalformedReferences(t *testing.T) {
	r := offlineRouter(t)

	req := multipartRequest(t, http.MethodPost, "/comment",
		map[string]string{"product": "zzz", "user": "zzz", "rating": "4"}, "images")
	w := do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCommentRejectsTooManyImages(t *testing.T) {
	r := offlineRouter(t)
	id := "0123456789abcdef01234567"

	files := make([][]byte, 11)
	for i := range files {
		files[i] = []byte("img")
	}
	req := multipartRequest(t, http.MethodPut, "/comment/"+id, nil, "images", files...)
	w := do(r, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownEndpoint(t *testing.T) {
	r := offlineRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error": "Endpoint not found"}`, w.Body.String())
}
