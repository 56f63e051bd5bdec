package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spacial-to-fxa/any-outlet/store"
	"github.com/spacial-to-fxa/any-outlet/utils"
)

// ShopController serves the storefront: product listing, checkout and
// the contact page.
type ShopController struct {
	products *store.Products
}

func NewShopController(products *store.Products) *ShopController {
	return &ShopController{products: products}
}

// Home lists every product, unfiltered, in natural order.
func (s *ShopController) Home(c *gin.Context) {
	products, err := s.products.All(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", viewData(c, gin.H{
		"Products": products,
	}))
}

// ShowCheckout renders the checkout form, or an out-of-stock message for
// a missing or exhausted product.
func (s *ShopController) ShowCheckout(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.String(http.StatusOK, "Out of Stock")
		return
	}

	product, err := s.products.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusOK, "Out of Stock")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	if product.Stock <= 0 {
		c.String(http.StatusOK, "Out of Stock")
		return
	}

	c.HTML(http.StatusOK, "checkout.html", viewData(c, gin.H{
		"Product": product,
	}))
}

// ProcessCheckout builds the PromptPay QR for the sale price and then
// reserves one unit of stock. The QR comes first so a payload failure
// burns nothing; the reservation itself happens when the QR is shown,
// not when payment completes, and is never released. Only the
// lost-update race on the decrement is guarded (see
// store.Products.ReserveOne): of two buyers racing for the last unit,
// the one whose decrement loses sees out-of-stock here.
func (s *ShopController) ProcessCheckout(c *gin.Context) {
	address := c.PostForm("address")
	phone := c.PostForm("phone")

	id, err := primitive.ObjectIDFromHex(c.PostForm("productId"))
	if err != nil {
		c.String(http.StatusOK, "Out of Stock")
		return
	}

	product, err := s.products.FindByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		c.String(http.StatusOK, "Out of Stock")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	qrImage, err := utils.PaymentQR(phone, product.SalePrice)
	if err != nil {
		serverError(c, err)
		return
	}

	reserved, err := s.products.ReserveOne(c.Request.Context(), id)
	if errors.Is(err, store.ErrOutOfStock) {
		c.String(http.StatusOK, "Out of Stock")
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "payment.html", viewData(c, gin.H{
		"Product": reserved,
		"QRImage": qrImage,
		"Address": address,
	}))
}

// Contact renders the static contact page off the site config.
func (s *ShopController) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", viewData(c, nil))
}
