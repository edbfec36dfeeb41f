package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"shopstack-backend/models"
)

// End-to-end scenarios against a real MongoDB. Skipped unless
// MONGO_TEST_URI points at a reachable server.

func createUser(t *testing.T, r *gin.Engine, email string) models.User {
	t.Helper()
	w := do(r, jsonRequest(t, http.MethodPost, "/user", map[string]any{
		"email":    email,
		"password": "secret",
		"username": "tester",
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var user models.User
	decode(t, w, &user)
	require.False(t, user.ID.IsZero())
	return user
}

func createProduct(t *testing.T, r *gin.Engine, description string, pricing string) models.Product {
	t.Helper()
	req := multipartRequest(t, http.MethodPost, "/product", map[string]string{
		"description":  description,
		"pricing":      pricing,
		"shippingCost": "4.50",
	}, "image", []byte("fake image bytes"))
	w := do(r, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var product models.Product
	decode(t, w, &product)
	require.False(t, product.ID.IsZero())
	return product
}

func TestProductRoundTrip(t *testing.T) {
	r := liveRouter(t)

	product := createProduct(t, r, "standing desk", "199.99")
	require.NotEmpty(t, product.Image)

	w := do(r, httptest.NewRequest(http.MethodGet, "/product/"+product.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Product
	decode(t, w, &fetched)
	require.Equal(t, product.Description, fetched.Description)
	require.Equal(t, product.Pricing, fetched.Pricing)
	require.Equal(t, product.ShippingCost, fetched.ShippingCost)
	require.Equal(t, product.Image, fetched.Image)
}

func TestGetMissingProductReturns404(t *testing.T) {
	r := liveRouter(t)

	w := do(r, httptest.NewRequest(http.MethodGet, "/product/"+primitive.NewObjectID().Hex(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error": "Product not found"}`, w.Body.String())
}

func TestDuplicateEmailRejected(t *testing.T) {
	r := liveRouter(t)

	createUser(t, r, "a@x.com")

	w := do(r, jsonRequest(t, http.MethodPost, "/user", map[string]any{
		"email":    "a@x.com",
		"password": "other",
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var userList []models.User
	decode(t, w, &userList)
	require.Len(t, userList, 1)
	require.Equal(t, "a@x.com", userList[0].Email)
	require.Equal(t, "secret", userList[0].Password)
}

func TestPartialProductUpdate(t *testing.T) {
	r := liveRouter(t)

	product := createProduct(t, r, "office chair", "89.90")

	req := multipartRequest(t, http.MethodPut, "/product/"+product.ID.Hex(),
		map[string]string{"pricing": "74.90"}, "image")
	w := do(r, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Product
	decode(t, w, &updated)
	require.Equal(t, 74.90, updated.Pricing)
	require.Equal(t, product.Description, updated.Description)
	require.Equal(t, product.ShippingCost, updated.ShippingCost)
	require.Equal(t, product.Image, updated.Image)
}

func TestDeleteCartThenGet(t *testing.T) {
	r := liveRouter(t)

	user := createUser(t, r, "cart@x.com")
	product := createProduct(t, r, "mug", "9.99")

	w := do(r, jsonRequest(t, http.MethodPost, "/cart", map[string]any{
		"products":   []string{product.ID.Hex()},
		"quantities": []int{2},
		"user":       user.ID.Hex(),
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var cart models.Cart
	decode(t, w, &cart)

	w = do(r, httptest.NewRequest(http.MethodDelete, "/cart/"+cart.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message": "Cart deleted successfully"}`, w.Body.String())

	w = do(r, httptest.NewRequest(http.MethodGet, "/cart/"+cart.ID.Hex(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCartRejectsUnknownReferences(t *testing.T) {
	r := liveRouter(t)

	user := createUser(t, r, "ref@x.com")

	w := do(r, jsonRequest(t, http.MethodPost, "/cart", map[string]any{
		"products":   []string{primitive.NewObjectID().Hex()},
		"quantities": []int{1},
		"user":       user.ID.Hex(),
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartExpansionWithDanglingReference(t *testing.T) {
	r := liveRouter(t)

	user := createUser(t, r, "dangle@x.com")
	product := createProduct(t, r, "lamp", "24.00")

	w := do(r, jsonRequest(t, http.MethodPost, "/cart", map[string]any{
		"products":   []string{product.ID.Hex()},
		"quantities": []int{1},
		"user":       user.ID.Hex(),
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var cart models.Cart
	decode(t, w, &cart)

	// Deleting the product leaves the cart reference dangling; expansion
	// resolves it to null instead of failing.
	w = do(r, httptest.NewRequest(http.MethodDelete, "/product/"+product.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/cart/"+cart.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	var expanded models.CartExpanded
	decode(t, w, &expanded)
	require.Len(t, expanded.Products, 1)
	require.Nil(t, expanded.Products[0])
	require.NotNil(t, expanded.User)
	require.Equal(t, "dangle@x.com", expanded.User.Email)
}

func TestOrderDefaultsAndExpansion(t *testing.T) {
	r := liveRouter(t)

	user := createUser(t, r, "order@x.com")
	first := createProduct(t, r, "keyboard", "49.00")
	second := createProduct(t, r, "mouse", "19.00")

	w := do(r, jsonRequest(t, http.MethodPost, "/order", map[string]any{
		"user": user.ID.Hex(),
		"products": []map[string]any{
			{"product": first.ID.Hex(), "quantity": 1, "price": 49.00},
			{"product": second.ID.Hex(), "quantity": 2, "price": 19.00},
		},
		"totalAmount":     87.00,
		"shippingAddress": "12 Main St",
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	decode(t, w, &order)
	require.Equal(t, "Pending", order.Status)
	require.WithinDuration(t, time.Now(), order.OrderDate, time.Minute)

	w = do(r, httptest.NewRequest(http.MethodGet, "/order/"+order.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	var expanded models.OrderExpanded
	decode(t, w, &expanded)
	require.NotNil(t, expanded.User)
	require.Equal(t, "order@x.com", expanded.User.Email)
	require.Len(t, expanded.Products, 2)
	require.NotNil(t, expanded.Products[0].Product)
	require.Equal(t, "keyboard", expanded.Products[0].Product.Description)
	require.Equal(t, 2, expanded.Products[1].Quantity)

	w = do(r, httptest.NewRequest(http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var orderList []models.OrderExpanded
	decode(t, w, &orderList)
	require.Len(t, orderList, 1)
	require.NotNil(t, orderList[0].User)
}

func TestOrderStatusIsFreeText(t *testing.T) {
	r := liveRouter(t)

	user := createUser(t, r, "status@x.com")
	w := do(r, jsonRequest(t, http.MethodPost, "/order", map[string]any{
		"user": user.ID.Hex(),
	}))
	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	decode(t, w, &order)

	w = do(r, jsonRequest(t, http.MethodPut, "/order/"+order.ID.Hex(), map[string]any{
		"status": "left on the porch",
	}))
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Order
	decode(t, w, &updated)
	require.Equal(t, "left on the porch", updated.Status)
	require.Equal(t, order.OrderDate.Unix(), updated.OrderDate.Unix())
}

func TestCommentImageHandling(t *testing.T) {
	r := liveRouter(t)

	user := createUser(t, r, "review@x.com")
	product := createProduct(t, r, "blender", "59.00")

	req := multipartRequest(t, http.MethodPost, "/comment", map[string]string{
		"product": product.ID.Hex(),
		"user":    user.ID.Hex(),
		"rating":  "4",
		"text":    "works well",
	}, "images", []byte("one"), []byte("two"), []byte("three"))
	w := do(r, req)
	require.Equal(t, http.StatusCreated, w.Code)
	var comment models.Comment
	decode(t, w, &comment)
	require.Len(t, comment.Images, 3)
	require.Equal(t, 4.0, comment.Rating)

	// A replacement upload swaps the whole sequence; rating is untouched.
	req = multipartRequest(t, http.MethodPut, "/comment/"+comment.ID.Hex(),
		nil, "images", []byte("only"))
	w = do(r, req)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Comment
	decode(t, w, &updated)
	require.Len(t, updated.Images, 1)
	require.Equal(t, 4.0, updated.Rating)
	require.Equal(t, "works well", updated.Text)
}
