package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/strongerfit/teamup-relay/pkg/errorx"
	"github.com/strongerfit/teamup-relay/pkg/xcontext"
)

// RedirectResponse is implemented by responses that redirect the client
// instead of writing a JSON body.
type RedirectResponse interface {
	RedirectInfo() (int, string)
}

// TextResponse is implemented by responses rendered as plain text instead of
// JSON.
type TextResponse interface {
	Text() string
}

func wrapHandler[Request, Response any](
	router *Router,
	method string,
	handler HandlerFunc[Request, Response],
) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		var err error
		switch method {
		case http.MethodGet:
			err = c.ShouldBindQuery(&req)
		case http.MethodPost:
			err = c.ShouldBindJSON(&req)
		default:
			err = errors.New("unsupported method")
		}
		if err != nil {
			status, resp := newErrorResponse(errorx.New(errorx.BadRequest, "Cannot bind the request: %v", err))
			c.JSON(status, resp)
			return
		}

		ctx := c.Request.Context()
		ctx = xcontext.WithConfigs(ctx, router.cfg)
		ctx = xcontext.WithLogger(ctx, router.logger)
		ctx = xcontext.WithHTTPClient(ctx, router.httpClient)

		resp, err := handler(ctx, &req)
		if err != nil {
			status, body := newErrorResponse(err)
			c.JSON(status, body)
			return
		}

		if redirect, ok := any(resp).(RedirectResponse); ok {
			c.Redirect(redirect.RedirectInfo())
			return
		}

		if text, ok := any(resp).(TextResponse); ok {
			c.String(http.StatusOK, text.Text())
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
