package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/growthops/deeplink-checker/log"
	"github.com/growthops/deeplink-checker/model"
	"github.com/growthops/deeplink-checker/util"
)

// DeeplinkService forwards deeplink check requests to the upstream
// verification API. It keeps no state across calls; every invocation is
// independent.
type DeeplinkService struct {
	*BaseService
}

func NewDeeplinkService(base *BaseService) *DeeplinkService {
	return &DeeplinkService{base}
}

// CheckDeeplink validates the request, attaches the configured bearer
// credential and forwards the tuple to the upstream endpoint. All
// failures are reported in the returned result, never as a panic or a
// dropped response.
func (s *DeeplinkService) CheckDeeplink(ctx context.Context, req *model.CheckRequest) *model.CheckResult {
	if missing := req.Validate(); len(missing) > 0 {
		return model.CheckError(model.ValidationError,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")))
	}

	token := s.Config.RefreshToken
	if token == "" {
		return model.CheckError(model.ConfigurationError, "authentication token not configured")
	}

	url := s.Config.UpstreamURL
	if req.Endpoint != "" && s.Config.AllowEndpointOverride {
		url = req.Endpoint
	}

	res, err := util.PostWithHeader(ctx, s.Client, url, map[string]string{
		"Authorization": "Bearer " + token,
	}, req.UpstreamBody())
	if err != nil {
		log.Log.Errorf("deeplink check: upstream call failed: %s", err.Error())
		return model.CheckError(model.NetworkError, err.Error())
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return model.CheckError(model.NetworkError, err.Error())
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		log.Log.Warnf("deeplink check: upstream status %d", res.StatusCode)
		return model.CheckUpstreamError(res.StatusCode, string(body))
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return model.CheckError(model.InvalidResponseError,
			fmt.Sprintf("upstream response is not valid JSON: %s", err.Error()))
	}

	// The upstream reports semantic outcome in its own `status` field.
	// A 200 with a non-success status is a completed exchange, so it is
	// surfaced as a failure envelope with the full body, not an error.
	if gjson.GetBytes(body, "status").String() != model.StatusSuccess {
		return model.CheckFailure(data, gjson.GetBytes(body, "error_message").String())
	}

	return model.CheckSuccess(data)
}

// Forward relays a raw payload to the upstream endpoint, mirroring the
// proxy contract: the caller's Authorization header wins over the
// configured credential and the upstream status and body are returned
// untouched.
func (s *DeeplinkService) Forward(ctx context.Context, payload []byte, authorization string) (int, []byte, *model.CheckResult) {
	if authorization == "" {
		if s.Config.RefreshToken == "" {
			return 0, nil, model.CheckError(model.ConfigurationError, "authentication token not configured")
		}
		authorization = "Bearer " + s.Config.RefreshToken
	}

	res, err := util.PostRaw(ctx, s.Client, s.Config.UpstreamURL, map[string]string{
		"Authorization": authorization,
	}, payload)
	if err != nil {
		log.Log.Errorf("deeplink forward: upstream call failed: %s", err.Error())
		return 0, nil, model.CheckError(model.NetworkError, err.Error())
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, model.CheckError(model.NetworkError, err.Error())
	}
	return res.StatusCode, body, nil
}
