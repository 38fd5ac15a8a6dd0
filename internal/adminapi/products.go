package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/suryatech/solarportal/internal/domain"
	"github.com/suryatech/solarportal/internal/webserver"
)

func registerProductRoutes() {
	webserver.ApiGET("/products", adminListProducts)
	webserver.ApiPOST("/products", adminCreateProduct)
	webserver.ApiPUT("/products/:id", adminUpdateProduct)
	webserver.ApiDELETE("/products/:id", adminDeleteProduct)
	webserver.ApiGET("/categories", adminListCategories)
	webserver.ApiPOST("/categories", adminCreateCategory)
	webserver.ApiPUT("/categories/:id", adminUpdateCategory)
	webserver.ApiDELETE("/categories/:id", adminDeleteCategory)
}

func adminListProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	query := GetDB(c).Model(&domain.Product{})
	if keyword := c.QueryParam("keyword"); keyword != "" {
		query = query.Where("name like ?", "%"+keyword+"%")
	}
	if cat := c.QueryParam("category"); cat != "" {
		query = query.Where("category = ?", cat)
	}
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to count products", err.Error())
	}
	var products []domain.Product
	if err := query.Order("id").Offset((page - 1) * pageSize).Limit(pageSize).Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load products", err.Error())
	}
	return paged(c, products, total, page, pageSize)
}

func validateProduct(p *domain.Product) string {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	switch {
	case p.Name == "":
		return "Name is required"
	case p.Category == "":
		return "Category is required"
	case p.Price <= 0:
		return "Price must be positive"
	case p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5):
		return "Rating must be between 0 and 5"
	}
	return ""
}

func adminCreateProduct(c echo.Context) error {
	var product domain.Product
	if err := c.Bind(&product); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}
	product.ID = 0
	if msg := validateProduct(&product); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	if err := GetDB(c).Create(&product).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	logOpr(c, "create product", "product %d %s", product.ID, product.Name)
	return created(c, product)
}

func adminUpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product id", nil)
	}
	var existing domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&existing).Error; err != nil {
		return fail(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", nil)
	}
	var product domain.Product
	if err := c.Bind(&product); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}
	if msg := validateProduct(&product); msg != "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", msg, nil)
	}
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	if err := GetDB(c).Save(&product).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	logOpr(c, "update product", "product %d %s", product.ID, product.Name)
	return ok(c, product)
}

func adminDeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid product id", nil)
	}
	var count int64
	GetDB(c).Model(&domain.Installation{}).Where("product_id = ?", id).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "PRODUCT_IN_USE", "Product is referenced by installations", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	logOpr(c, "delete product", "product %d", id)
	return ok(c, map[string]interface{}{"success": true})
}

func adminListCategories(c echo.Context) error {
	var categories []domain.Category
	if err := GetDB(c).Order("id").Find(&categories).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load categories", err.Error())
	}
	return ok(c, categories)
}

func adminCreateCategory(c echo.Context) error {
	var category domain.Category
	if err := c.Bind(&category); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category", nil)
	}
	category.ID = 0
	category.Name = strings.TrimSpace(category.Name)
	category.Slug = strings.TrimSpace(category.Slug)
	if category.Name == "" || category.Slug == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name and slug are required", nil)
	}
	category.CreatedAt = time.Now()
	if err := GetDB(c).Create(&category).Error; err != nil {
		return fail(c, http.StatusConflict, "DUPLICATE_CATEGORY", "Category name or slug already exists", nil)
	}
	logOpr(c, "create category", "category %d %s", category.ID, category.Name)
	return created(c, category)
}

// adminUpdateCategory renames a category and cascades the new name to the
// products that reference it.
func adminUpdateCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid category id", nil)
	}
	var existing domain.Category
	if err := GetDB(c).Where("id = ?", id).First(&existing).Error; err != nil {
		return fail(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found", nil)
	}
	var category domain.Category
	if err := c.Bind(&category); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category", nil)
	}
	category.Name = strings.TrimSpace(category.Name)
	category.Slug = strings.TrimSpace(category.Slug)
	if category.Name == "" || category.Slug == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name and slug are required", nil)
	}
	category.ID = id
	category.CreatedAt = existing.CreatedAt
	if err := GetDB(c).Save(&category).Error; err != nil {
		return fail(c, http.StatusConflict, "DUPLICATE_CATEGORY", "Category name or slug already exists", nil)
	}
	if category.Name != existing.Name {
		GetDB(c).Model(&domain.Product{}).Where("category = ?", existing.Name).Update("category", category.Name)
	}
	logOpr(c, "update category", "category %d %s", category.ID, category.Name)
	return ok(c, category)
}

func adminDeleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid category id", nil)
	}
	var category domain.Category
	if err := GetDB(c).Where("id = ?", id).First(&category).Error; err != nil {
		return fail(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found", nil)
	}
	var count int64
	GetDB(c).Model(&domain.Product{}).Where("category = ?", category.Name).Count(&count)
	if count > 0 {
		return fail(c, http.StatusConflict, "CATEGORY_IN_USE", "Category still has products", nil)
	}
	if err := GetDB(c).Delete(&category).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete category", err.Error())
	}
	logOpr(c, "delete category", "category %d %s", id, category.Name)
	return ok(c, map[string]interface{}{"success": true})
}
