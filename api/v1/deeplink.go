package v1

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/growthops/deeplink-checker/http/response"
	"github.com/growthops/deeplink-checker/log"
	"github.com/growthops/deeplink-checker/model"
)

// CheckDeeplinkHandler is the tool/RPC shape of the forwarder: a JSON
// body with the five named fields, answered with the response envelope
// wrapping the check result.
func (s *APIV1Service) CheckDeeplinkHandler(c echo.Context) error {
	ctx := c.Request().Context()

	var req model.CheckRequest
	if err := c.Bind(&req); err != nil {
		log.Log.Errorf("failed to bind check request: %s", err.Error())
		return c.JSON(http.StatusBadRequest, response.Failed(response.REQUIRED_PARAMS.Wrap(err)))
	}

	result := s.DeeplinkService.CheckDeeplink(ctx, &req)

	switch result.Status {
	case model.StatusSuccess:
		return c.JSON(http.StatusOK, response.Success(result.Data))
	case model.StatusFailure:
		// Completed exchange, semantic failure. The upstream body is
		// still returned so callers can inspect it.
		failed := response.CHECK_FAILED
		if result.Message != "" {
			failed.ErrMsg = result.Message
		}
		return c.JSON(http.StatusOK, response.FailedWithData(failed, result.Data))
	default:
		return s.checkErrorResponse(c, result)
	}
}

func (s *APIV1Service) checkErrorResponse(c echo.Context, result *model.CheckResult) error {
	switch result.Kind {
	case model.ValidationError:
		e := response.REQUIRED_PARAMS
		e.ErrMsg = result.Message
		return c.JSON(http.StatusBadRequest, response.Failed(e))
	case model.ConfigurationError:
		return c.JSON(http.StatusInternalServerError, response.Failed(response.TOKEN_NOT_CONFIGURED))
	case model.NetworkError:
		e := response.NETWORK_ERROR
		e.ErrMsg = result.Message
		return c.JSON(http.StatusBadGateway, response.Failed(e))
	case model.UpstreamHTTPError:
		return c.JSON(http.StatusBadGateway, response.FailedWithData(response.UPSTREAM_ERROR, map[string]interface{}{
			"status_code": result.HTTPStatus,
			"body":        result.Body,
		}))
	case model.InvalidResponseError:
		e := response.INVALID_RESPONSE
		e.ErrMsg = result.Message
		return c.JSON(http.StatusBadGateway, response.Failed(e))
	}
	return response.Error(c, response.INTERNAL_ERROR)
}

// ForwardDeeplinkHandler is the HTTP-proxy shape from the original
// service: the caller's JSON body and Authorization header are relayed
// untouched and the upstream status code and body are mirrored back.
func (s *APIV1Service) ForwardDeeplinkHandler(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.Failed(response.REQUIRED_PARAMS.Wrap(err)))
	}

	status, body, errResult := s.DeeplinkService.Forward(ctx, payload, c.Request().Header.Get("Authorization"))
	if errResult != nil {
		switch errResult.Kind {
		case model.ConfigurationError:
			return c.JSON(http.StatusInternalServerError, response.Failed(response.TOKEN_NOT_CONFIGURED))
		default:
			e := response.NETWORK_ERROR
			e.ErrMsg = errResult.Message
			return c.JSON(http.StatusBadGateway, response.Failed(e))
		}
	}

	return c.Blob(status, echo.MIMEApplicationJSON, body)
}
