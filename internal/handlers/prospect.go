package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rotisserie/eris"
	"prospect-finder/internal/common/errors"
	"prospect-finder/internal/common/logging"
	"prospect-finder/internal/contact"
	"prospect-finder/internal/models"
)

// Error messages returned to API callers
const (
	MethodNotAllowedMessage = "Méthode non autorisée"
	InvalidBodyMessage      = "Corps de requête invalide"
	NameRequiredMessage     = "Le nom est requis"
	SearchFailedMessage     = "Erreur lors de la recherche LinkedIn"
)

const maxBodyBytes = 64 << 10

// HandleProspect searches for a prospect by name
// @Summary Find a prospect
// @Description Searches the provider by name, enriches the best match with profile, posts, reactions and email data, and returns a normalised record
// @Tags prospect
// @Accept json
// @Produce json
// @Param request body models.ProspectRequest true "Name to search for"
// @Success 200 {object} models.NormalizedRecord "Prospect found"
// @Success 200 {object} models.MessageResponse "No prospect found"
// @Failure 400 {object} models.ErrorResponse "Malformed body or empty name"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Failure 500 {object} models.ErrorResponse "Missing token or search failure"
// @Router /api/prospect [post]
func (h *Handlers) HandleProspect(w http.ResponseWriter, r *http.Request) {
	record, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if record == nil {
		h.sendJSONResponse(w, http.StatusOK, models.MessageResponse{Message: models.NoMatchMessage})
		return
	}
	h.sendJSONResponse(w, http.StatusOK, record)
}

// HandleProspectVCard returns the best match as a vCard
// @Summary Export a prospect as vCard
// @Description Runs the same lookup as /api/prospect and encodes the match as a vCard 4.0 contact
// @Tags prospect
// @Accept json
// @Produce text/vcard
// @Param request body models.ProspectRequest true "Name to search for"
// @Success 200 {string} string "vCard"
// @Failure 400 {object} models.ErrorResponse "Malformed body or empty name"
// @Failure 404 {object} models.MessageResponse "No prospect found"
// @Failure 405 {object} models.ErrorResponse "Method not allowed"
// @Failure 500 {object} models.ErrorResponse "Missing token or search failure"
// @Router /api/prospect/vcard [post]
func (h *Handlers) HandleProspectVCard(w http.ResponseWriter, r *http.Request) {
	record, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if record == nil {
		h.sendJSONResponse(w, http.StatusNotFound, models.MessageResponse{Message: models.NoMatchMessage})
		return
	}

	var buf bytes.Buffer
	if err := contact.Encode(&buf, record); err != nil {
		h.logger.WithContext(r.Context()).Error("vCard export failed", err)
		h.sendError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contact.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="prospect.vcf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// lookup handles the method, body and error plumbing shared by both
// prospect routes. ok is false once a response has been written.
func (h *Handlers) lookup(w http.ResponseWriter, r *http.Request) (record *models.NormalizedRecord, ok bool) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return nil, false
	case http.MethodPost:
	default:
		h.sendError(w, http.StatusMethodNotAllowed, MethodNotAllowedMessage)
		return nil, false
	}

	var req models.ProspectRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || json.Unmarshal(body, &req) != nil {
		h.sendError(w, http.StatusBadRequest, InvalidBodyMessage)
		return nil, false
	}

	name := req.SearchName()
	if name == "" {
		h.sendError(w, http.StatusBadRequest, NameRequiredMessage)
		return nil, false
	}

	record, found, err := h.service.Lookup(r.Context(), name)
	if err != nil {
		h.writeLookupError(w, r, err)
		return nil, false
	}
	if !found {
		return nil, true
	}
	return record, true
}

func (h *Handlers) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, isAppErr := errors.As(err)

	if isAppErr && appErr.Type == errors.ErrTypeConfig {
		h.logger.WithContext(r.Context()).Error("Provider is not configured", err)
		h.sendError(w, http.StatusInternalServerError, appErr.Message)
		return
	}
	if isAppErr && appErr.Type == errors.ErrTypeValidation {
		h.sendError(w, http.StatusBadRequest, appErr.Message)
		return
	}

	h.logger.WithContext(r.Context()).Error("Prospect lookup failed", err,
		logging.String("error_type", string(errors.GetType(err))),
	)

	resp := models.ErrorResponse{
		Error:   SearchFailedMessage,
		Details: errorDetails(err),
	}
	if !h.config.IsProduction() {
		resp.Stack = eris.ToString(err, true)
	}
	h.sendJSONResponse(w, http.StatusInternalServerError, resp)
}

// errorDetails describes a lookup failure for API callers.
func errorDetails(err error) string {
	appErr, ok := errors.As(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case errors.ErrTypeTimeout:
		if timeout, endpoint, ok := errors.TimeoutOf(err); ok {
			return fmt.Sprintf("Timeout après %dms pour %s", timeout.Milliseconds(), endpoint)
		}
	case errors.ErrTypeUpstream:
		return fmt.Sprintf("API error: %d %s", appErr.Status, appErr.Message)
	}
	return appErr.Message
}
