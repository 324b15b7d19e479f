package router

import (
	"errors"
	"net/http"

	"github.com/strongerfit/teamup-relay/pkg/errorx"
)

type errorResponse struct {
	Code  int64  `json:"code"`
	Error string `json:"error"`
}

func newErrorResponse(err error) (int, errorResponse) {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return httpStatus(errx.Code), errorResponse{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return http.StatusInternalServerError, errorResponse{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

// httpStatus translates the error taxonomy to the statuses the remote callers
// expect: 400 for input and protocol violations, 404 for lookup misses, 500
// for remote and deployment failures.
func httpStatus(code errorx.Code) int {
	switch code {
	case errorx.BadRequest, errorx.MissingFields, errorx.InvalidState,
		errorx.MissingCode, errorx.NotAuthorized:
		return http.StatusBadRequest
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.MissingConfig, errorx.TokenExchangeFailed,
		errorx.RemoteError, errorx.Internal:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
