package http

import (
	"errors"
	"net/http"

	"task-management/internal/task"
	"task-management/internal/task/repository/rest"
	pkgErrors "task-management/pkg/errors"
)

// mapError translates use-case and task API errors into HTTP errors from
// pkg/errors. Task API failures keep their normalized message.
func (h *handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, task.ErrInvalidID),
		errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrInvalidStatus):
		return pkgErrors.NewBadRequestError(err.Error())
	}

	var apiErr *rest.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Kind == rest.KindUnreachable:
			return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, apiErr.Error())
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return pkgErrors.NewHTTPError(apiErr.StatusCode, apiErr.Error())
		default:
			return pkgErrors.NewHTTPError(http.StatusBadGateway, apiErr.Error())
		}
	}

	return pkgErrors.ErrInternalServerError
}
