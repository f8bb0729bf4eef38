package handlers

import (
	"errors"
	"net/http"

	request "crm_imobiliario/internal/adapter/http/dto/request"
	response "crm_imobiliario/internal/adapter/http/dto/response"
	"crm_imobiliario/internal/auth"
	"crm_imobiliario/internal/infrastructure/storage"
	"crm_imobiliario/internal/usecase"
	"crm_imobiliario/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_TEMPLATE", "Invalid contract template upload", http.StatusBadRequest)
)

type ContractTemplateHandler struct {
	usecase usecase.IContractTemplateUseCase
}

func NewContractTemplateHandler(uc usecase.IContractTemplateUseCase) *ContractTemplateHandler {
	return &ContractTemplateHandler{usecase: uc}
}

// UploadContractTemplate godoc
// @Summary      Upload a contract template
// @Tags         contracts
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        name         formData  string  true   "Template name"
// @Param        description  formData  string  false  "Description"
// @Param        file         formData  file    true   "Document"
// @Success      201  {object}  response.ContractTemplateResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      415  {object}  pkg.HTTPError
// @Router       /contracts [post]
func (h *ContractTemplateHandler) UploadContractTemplate(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var form request.UploadContractTemplateForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(errInvalidContractPayload.HTTPStatus, errInvalidContractPayload.ToHTTPError())
		return
	}
	defer file.Close()

	tpl, err := h.usecase.Upload(c.Request.Context(), usecase.UploadContractTemplateInput{
		UserID:      userID,
		Name:        form.Name,
		Description: form.Description,
		FileName:    header.Filename,
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromContractTemplate(tpl))
}

// ListContractTemplates godoc
// @Summary      Caller's contract templates, newest first
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Success      200  {array}  response.ContractTemplateResponse
// @Router       /contracts [get]
func (h *ContractTemplateHandler) ListContractTemplates(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items, err := h.usecase.List(c.Request.Context(), userID)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContractTemplates(items))
}

// GetDownloadURL godoc
// @Summary      Short-lived download link for a template
// @Tags         contracts
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Template ID"
// @Success      200  {object}  response.DownloadURLResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id}/download [get]
func (h *ContractTemplateHandler) GetDownloadURL(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	url, err := h.usecase.DownloadURL(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.DownloadURLResponse{URL: url})
}

// DeleteContractTemplate godoc
// @Summary      Delete a template and its document
// @Tags         contracts
// @Security     Bearer
// @Param        id   path  string  true  "Template ID"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /contracts/{id} [delete]
func (h *ContractTemplateHandler) DeleteContractTemplate(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ContractTemplateHandler) userID(c *gin.Context) (string, bool) {
	ident, ok := auth.GetIdentity(c.Request.Context())
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return "", false
	}
	return ident.UserID, true
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidContractTemplate), errors.Is(err, storage.ErrInvalidKey):
		return pkg.NewDomainErrorSimple("INVALID_CONTRACT_TEMPLATE", "Invalid contract template", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedDocumentType):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_DOCUMENT", "Unsupported document type", http.StatusUnsupportedMediaType)
	case errors.Is(err, usecase.ErrDocumentTooLarge):
		return pkg.NewDomainErrorSimple("DOCUMENT_TOO_LARGE", "Document too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, usecase.ErrContractTemplateNotFound), errors.Is(err, storage.ErrNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_TEMPLATE_NOT_FOUND", "Contract template not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrAccessDenied):
		return pkg.NewDomainError("STORAGE_ACCESS_DENIED", "Document storage refused the request", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
