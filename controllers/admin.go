package controllers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spacial-to-fxa/any-outlet/models"
	"github.com/spacial-to-fxa/any-outlet/store"
)

// AdminController serves the admin console: user management, product
// creation and shop settings.
type AdminController struct {
	users     *store.Users
	products  *store.Products
	configs   *store.SiteConfigs
	uploadDir string
}

func NewAdminController(users *store.Users, products *store.Products, configs *store.SiteConfigs, uploadDir string) *AdminController {
	return &AdminController{
		users:     users,
		products:  products,
		configs:   configs,
		uploadDir: uploadDir,
	}
}

// Dashboard lists every user. The store hands over full records; the
// template only shows name, email, role and verification state.
func (a *AdminController) Dashboard(c *gin.Context) {
	users, err := a.users.All(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "admin_dashboard.html", viewData(c, gin.H{
		"Users": users,
	}))
}

// CreateProduct accepts the product form plus an optional image upload.
// The image is stored under a uuid filename so concurrent uploads cannot
// collide, and the product references the bare filename.
func (a *AdminController) CreateProduct(c *gin.Context) {
	realPrice, err1 := strconv.ParseFloat(c.PostForm("realPrice"), 64)
	salePrice, err2 := strconv.ParseFloat(c.PostForm("salePrice"), 64)
	stock, err3 := strconv.Atoi(c.PostForm("stock"))
	if err1 != nil || err2 != nil || err3 != nil {
		c.String(http.StatusOK, "Invalid price or stock value")
		return
	}

	image := ""
	file, err := c.FormFile("image")
	if err == nil {
		image = "img-" + uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(a.uploadDir, image)); err != nil {
			serverError(c, err)
			return
		}
	} else if err != http.ErrMissingFile {
		serverError(c, err)
		return
	}

	product := models.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		RealPrice:   realPrice,
		SalePrice:   salePrice,
		Stock:       stock,
		Image:       image,
	}
	if err := a.products.Create(c.Request.Context(), &product); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// PromoteUser sets the target user's role to admin. Idempotent; there is
// no demotion path.
func (a *AdminController) PromoteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.String(http.StatusOK, "Unknown user")
		return
	}
	if err := a.users.Promote(c.Request.Context(), id); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// UpdateSettings upserts the shop settings singleton.
func (a *AdminController) UpdateSettings(c *gin.Context) {
	cfg := models.SiteConfig{
		ShopName: c.PostForm("shopName"),
		Address:  c.PostForm("address"),
		Phone:    c.PostForm("phone"),
		Email:    c.PostForm("email"),
		LineID:   c.PostForm("lineId"),
	}
	if err := a.configs.Upsert(c.Request.Context(), cfg); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}
