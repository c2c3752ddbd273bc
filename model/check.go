package model

// CheckRequest is the (database, user, campaign, date, region) tuple
// forwarded to the deeplink verification API. All fields are opaque
// strings; the only validation is required-field presence.
type CheckRequest struct {
	DBName     string `json:"db_name"`
	UserID     string `json:"user_id"`
	CampaignID string `json:"campaign_id"`
	Date       string `json:"date"`
	Region     string `json:"region"`

	// Endpoint optionally overrides the configured upstream URL.
	// Honored only when the server is started with upstream.allow_override.
	Endpoint string `json:"endpoint,omitempty"`
}

// Validate returns the names of required fields that are missing or empty.
func (r *CheckRequest) Validate() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"db_name", r.DBName},
		{"user_id", r.UserID},
		{"campaign_id", r.CampaignID},
		{"date", r.Date},
		{"region", r.Region},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// UpstreamBody maps the request to the upstream JSON body. Exactly the
// five documented keys, the endpoint override is never forwarded.
func (r *CheckRequest) UpstreamBody() map[string]string {
	return map[string]string{
		"db_name":     r.DBName,
		"user_id":     r.UserID,
		"campaign_id": r.CampaignID,
		"date":        r.Date,
		"region":      r.Region,
	}
}

// ErrorKind categorizes a failed check.
type ErrorKind string

const (
	// ValidationError: a required field is missing, nothing was sent upstream.
	ValidationError ErrorKind = "validation_error"
	// ConfigurationError: the bearer credential is not configured.
	ConfigurationError ErrorKind = "configuration_error"
	// NetworkError: the upstream call failed at the transport level.
	NetworkError ErrorKind = "network_error"
	// UpstreamHTTPError: the upstream answered with a non-2xx status.
	UpstreamHTTPError ErrorKind = "upstream_http_error"
	// InvalidResponseError: the upstream body was not parseable as JSON.
	InvalidResponseError ErrorKind = "invalid_response_error"
)

// Check result statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusError   = "error"
)

// CheckResult is the tagged outcome of a deeplink check. Status is
// "success" for a verified deeplink, "failure" for an upstream exchange
// that completed but reported a non-success status, and "error" for
// everything in the ErrorKind taxonomy.
type CheckResult struct {
	Status  string                 `json:"status"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Kind    ErrorKind              `json:"error,omitempty"`
	Message string                 `json:"error_message,omitempty"`

	// For UpstreamHTTPError: the upstream status code and verbatim body.
	HTTPStatus int    `json:"http_status,omitempty"`
	Body       string `json:"body,omitempty"`
}

// CheckSuccess wraps the parsed upstream body.
func CheckSuccess(data map[string]interface{}) *CheckResult {
	return &CheckResult{Status: StatusSuccess, Data: data}
}

// CheckFailure reports a completed upstream exchange whose payload did
// not carry status "success". The full parsed body is preserved.
func CheckFailure(data map[string]interface{}, message string) *CheckResult {
	return &CheckResult{Status: StatusFailure, Data: data, Message: message}
}

// CheckError reports a local or transport-level error.
func CheckError(kind ErrorKind, message string) *CheckResult {
	return &CheckResult{Status: StatusError, Kind: kind, Message: message}
}

// CheckUpstreamError reports a non-2xx upstream answer, preserving the
// status code and raw body for the caller.
func CheckUpstreamError(status int, body string) *CheckResult {
	return &CheckResult{
		Status:     StatusError,
		Kind:       UpstreamHTTPError,
		Message:    "upstream returned non-success status",
		HTTPStatus: status,
		Body:       body,
	}
}
