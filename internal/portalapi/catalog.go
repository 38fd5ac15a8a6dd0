package portalapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerCatalogRoutes() {
	webserver.PubGET("/products", listProducts)
	webserver.PubGET("/products/featured", listFeaturedProducts)
	webserver.PubGET("/products/:id", getProduct)
	webserver.PubGET("/categories", listCategories)
}

func listProducts(c echo.Context) error {
	query := GetDB(c).Model(&domain.Product{})
	if cat := c.QueryParam("category"); cat != "" && cat != "all" {
		query = query.Where("category = ?", cat)
	}
	var products []domain.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load products", err.Error())
	}
	return ok(c, products)
}

func listFeaturedProducts(c echo.Context) error {
	var products []domain.Product
	if err := GetDB(c).Where("featured = ?", true).Order("id").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load products", err.Error())
	}
	return ok(c, products)
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product id", nil)
	}
	var product domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&product).Error; err != nil {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", nil)
	}
	return ok(c, product)
}

func listCategories(c echo.Context) error {
	var categories []domain.Category
	if err := GetDB(c).Order("id").Find(&categories).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load categories", err.Error())
	}
	return ok(c, categories)
}
