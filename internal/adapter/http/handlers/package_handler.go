package handlers

import (
	"net/http"

	request "servicehub/internal/adapter/http/dto/request"
	response "servicehub/internal/adapter/http/dto/response"
	"servicehub/internal/usecase"
	"servicehub/pkg"

	"github.com/gin-gonic/gin"
)

// PackageHandler handles the provider-side package catalog.

type PackageHandler struct {
	usecase usecase.IPackageCatalogUseCase
}

func NewPackageHandler(uc usecase.IPackageCatalogUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

// PublishPackage creates an immutable package under a service.
//
// @Summary  Publish a package
// @Accept   json
// @Produce  json
// @Param    service_id path string true "service id"
// @Param    package body request.PackagePublishRequest true "package"
// @Success  201 {object} response.PackageResponse
// @Router   /services/{service_id}/packages [post]
func (h *PackageHandler) PublishPackage(c *gin.Context) {
	var payload request.PackagePublishRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Publish(c.Request.Context(), c.Param("service_id"), payload.Name, payload.Price, payload.DeliveryDays, payload.Features)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPackage(created))
}

// ListPackages lists a service's packages in catalog order.
//
// @Summary  List a service's packages
// @Produce  json
// @Param    service_id path string true "service id"
// @Success  200 {array} response.PackageResponse
// @Router   /services/{service_id}/packages [get]
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.usecase.ListByServiceID(c.Request.Context(), c.Param("service_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPackages(packages))
}
