package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/spacial-to-fxa/any-outlet/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestShowCheckoutBadID(t *testing.T) {
	router := gin.New()
	shop := NewShopController(nil)
	router.GET("/checkout/:id", shop.ShowCheckout)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/not-an-id", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Out of Stock", w.Body.String())
}

func TestShowCheckoutExhaustedStock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("stock zero renders out of stock, not an error", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "shop.products", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Mug"},
			{Key: "realPrice", Value: 250.0},
			{Key: "salePrice", Value: 199.0},
			{Key: "stock", Value: int32(0)},
		}))

		router := gin.New()
		shop := NewShopController(store.NewProducts(mt.DB))
		router.GET("/checkout/:id", shop.ShowCheckout)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/checkout/"+id.Hex(), nil))

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Equal(mt, "Out of Stock", w.Body.String())
	})
}

func TestProcessCheckoutLastUnitRace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("loser of the reservation sees out of stock and nothing decrements twice", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			// the product still looked purchasable when the form was read
			mtest.CreateCursorResponse(0, "shop.products", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Mug"},
				{Key: "realPrice", Value: 250.0},
				{Key: "salePrice", Value: 199.0},
				{Key: "stock", Value: int32(1)},
			}),
			// findAndModify matched nothing: the other buyer took the last unit
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}),
		)

		router := gin.New()
		shop := NewShopController(store.NewProducts(mt.DB))
		router.POST("/process-checkout", shop.ProcessCheckout)

		form := "productId=" + id.Hex() + "&address=somewhere&phone=0812345678"
		req := httptest.NewRequest(http.MethodPost, "/process-checkout", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(mt, http.StatusOK, w.Code)
		assert.Equal(mt, "Out of Stock", w.Body.String())

		// the QR payload is built between the read and the reservation, so
		// a payload failure can never burn a unit: the decrement must be
		// the last command issued
		var names []string
		for _, ev := range mt.GetAllStartedEvents() {
			names = append(names, ev.CommandName)
		}
		assert.Equal(mt, []string{"find", "findAndModify"}, names)
	})
}
