package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"kanakku/internal/delivery/api/response"
	"kanakku/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const imageFormField = "image"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves /api/products.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProduct accepts JSON, or multipart form data with an optional "image" file.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.CreateProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fileHeader, err := c.FormFile(imageFormField)
		switch {
		case err == nil:
			file, err := fileHeader.Open()
			if err != nil {
				return errors.Wrap(err, "failed to open uploaded image")
			}
			defer file.Close()

			req.Image = &usecase.ImageUpload{Filename: fileHeader.Filename, Reader: file}
		case !errors.Is(err, http.ErrMissingFile):
			return response.BindingError(c, "image could not be read")
		}
	}

	out, err := h.productUC.CreateProduct(c.Request().Context(), identity.UID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, createdStatus(out.Upserted), out.Product)
}

// ListProducts returns active products, optionally filtered by ?shopId.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), identity.UID, c.QueryParam("shopId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// UpdateProduct applies a partial update.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req usecase.UpdateProductInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), identity.UID, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// DeleteProduct soft-deletes the product and its related transactions.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	identity, err := currentIdentity(c)
	if err != nil {
		return err
	}

	result, err := h.productUC.DeleteProduct(c.Request().Context(), identity.UID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Product deleted successfully", result)
}
