// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/agency-service/internal/storage"
)

// Response is the JSON envelope returned by every API endpoint.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Meta    *Meta  `json:"_meta,omitempty"`
}

type Meta struct {
	Page int64 `json:"page,omitempty"`
	Size int64 `json:"size,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, r Response) {
	r.Status = status

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(r)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Status: status, Message: message})
}

// ErrorStatus maps store and validation errors to an HTTP status code and a
// message safe to return to clients.
func ErrorStatus(err error) (int, string) {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK, ""
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest, validationErrs.Error()
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return http.StatusBadRequest, "referenced resource does not exist"
	case errors.Is(err, storage.ErrCheckViolation):
		return http.StatusBadRequest, "invalid value"
	}

	return http.StatusInternalServerError, "internal error"
}
