package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hubbra/go-storefront/app/apperr"
	"github.com/hubbra/go-storefront/app/helpers"
	"github.com/unrolled/render"
)

// respondError maps the error taxonomy to a status code and a structured
// JSON body. Anything untagged is logged and reported as a 500.
func respondError(rnd *render.Render, w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		payload := map[string]interface{}{"error": appErr.Message}
		if len(appErr.Fields) > 0 {
			payload["fields"] = appErr.Fields
		}
		_ = rnd.JSON(w, apperr.HTTPStatus(err), payload)
		return
	}
	log.Printf("internal error: %v", err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}

// validateStruct runs validator tags and converts failures into a tagged
// Validation error with per-field messages.
func validateStruct(validate *validator.Validate, v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperr.ValidationFields("validation failed", helpers.FormatValidationErrors(verrs))
		}
		return apperr.Validation("validation failed")
	}
	return nil
}
