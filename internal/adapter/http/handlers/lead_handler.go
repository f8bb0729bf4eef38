package handlers

import (
	"errors"
	"io"
	"net/http"

	request "crm_imobiliario/internal/adapter/http/dto/request"
	response "crm_imobiliario/internal/adapter/http/dto/response"
	"crm_imobiliario/internal/auth"
	"crm_imobiliario/internal/domain/entities"
	"crm_imobiliario/internal/usecase"
	"crm_imobiliario/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)
	errUnauthenticated    = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

// LeadHandler exposes the per-user lead store over HTTP.
//
// Every request works against the caller's session store, so the leads a
// response returns are the store's in-memory collection, not a fresh read.

type LeadHandler struct {
	sessions usecase.ILeadSessions
}

func NewLeadHandler(sessions usecase.ILeadSessions) *LeadHandler {
	return &LeadHandler{sessions: sessions}
}

// ListLeads godoc
// @Summary      Current lead collection
// @Tags         leads
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.LeadStoreStateResponse
// @Failure      401  {object}  pkg.HTTPError
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, stateResponse(store))
}

// RefreshLeads godoc
// @Summary      Reload the lead collection from the remote table
// @Tags         leads
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.LeadStoreStateResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /leads/refresh [post]
func (h *LeadHandler) RefreshLeads(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	if err := store.FetchAll(c.Request.Context()); err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, stateResponse(store))
}

// CreateLead godoc
// @Summary      Create a lead owned by the caller
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        lead  body      request.CreateLeadRequest  true  "Lead"
// @Success      201   {object}  response.LeadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	lead, err := store.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// UpdateLead godoc
// @Summary      Partially update a lead
// @Description  Missing keys are left untouched; optional keys sent as null are cleared.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string  true  "Lead ID"
// @Success      200   {object}  response.LeadResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /leads/{id} [patch]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}
	patch, err := request.ParseLeadPatch(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	lead, err := store.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// UpdateLeadFromKanban godoc
// @Summary      Save a lead edited on the board
// @Description  Empty strings and a zero valor clear the matching fields.
// @Tags         kanban
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                     true  "Lead ID"
// @Param        lead  body      request.KanbanLeadRequest  true  "Display lead"
// @Success      200   {object}  entities.KanbanLead
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /leads/{id}/kanban [put]
func (h *LeadHandler) UpdateLeadFromKanban(c *gin.Context) {
	var payload request.KanbanLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLeadPayload.HTTPStatus, errInvalidLeadPayload.ToHTTPError())
		return
	}

	store, ok := h.store(c)
	if !ok {
		return
	}

	id := c.Param("id")
	patch := entities.FromKanbanLead(payload.ToKanbanLead(id))

	lead, err := store.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, entities.ToKanbanLead(lead))
}

// DeleteLead godoc
// @Summary      Delete a lead
// @Tags         leads
// @Security     Bearer
// @Param        id   path  string  true  "Lead ID"
// @Success      204
// @Failure      502  {object}  pkg.HTTPError
// @Router       /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetKanban godoc
// @Summary      Leads grouped into board columns
// @Tags         kanban
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.KanbanBoardResponse
// @Router       /kanban [get]
func (h *LeadHandler) GetKanban(c *gin.Context) {
	store, ok := h.store(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromKanbanColumns(entities.GroupByStage(store.State().Leads)))
}

// CloseSession godoc
// @Summary      Drop the caller's lead store
// @Tags         session
// @Security     Bearer
// @Success      204
// @Router       /session [delete]
func (h *LeadHandler) CloseSession(c *gin.Context) {
	ident, ok := auth.GetIdentity(c.Request.Context())
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	h.sessions.Release(ident.UserID)
	c.Status(http.StatusNoContent)
}

// store resolves the caller's session store and writes the error response
// when there is none.
func (h *LeadHandler) store(c *gin.Context) (usecase.ILeadStore, bool) {
	ident, ok := auth.GetIdentity(c.Request.Context())
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return nil, false
	}

	store, err := h.sessions.Store(c.Request.Context(), ident.UserID)
	if err != nil {
		h.abort(c, err)
		return nil, false
	}
	return store, true
}

func (h *LeadHandler) abort(c *gin.Context, err error) {
	appErr := mapLeadError(err)
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// stateResponse swaps a remote failure's recorded message for the fixed one
// the error envelope uses.
func stateResponse(store usecase.ILeadStore) response.LeadStoreStateResponse {
	st := store.State()
	if st.Error != "" {
		var remote *usecase.RemoteOperationError
		if errors.As(store.Err(), &remote) {
			st.Error = mapLeadError(remote).Message
		}
	}
	return response.FromLeadStoreState(st)
}

func mapLeadError(err error) *pkg.AppError {
	var remote *usecase.RemoteOperationError
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", err.Error(), http.StatusNotFound)
	case errors.As(err, &remote):
		return pkg.NewDomainError("REMOTE_OPERATION_FAILED", "Remote lead table failure", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
