package log

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogLevelSwitcher(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logLevelSwitcher("debug"))
	assert.Equal(t, logrus.ErrorLevel, logLevelSwitcher("ERROR"))
	assert.Equal(t, logrus.InfoLevel, logLevelSwitcher("unknown"))
}

func TestLogReqRedactsAuthorization(t *testing.T) {
	var buf bytes.Buffer
	Log.SetOutput(&buf)
	Log.SetLevel(logrus.DebugLevel)
	defer SetupLogger("info")

	req, err := http.NewRequest(http.MethodPost, "http://example.com/check-deeplink",
		strings.NewReader(`{"db_name":"NDTVProfit"}`))
	assert.NoError(t, err)
	req.Header.Set("Authorization", "Bearer super-secret")

	LogReq(req)

	assert.NotContains(t, buf.String(), "super-secret")
	assert.Contains(t, buf.String(), "REDACTED")

	// The body must still be readable after logging.
	body := make([]byte, 24)
	n, _ := req.Body.Read(body)
	assert.Equal(t, `{"db_name":"NDTVProfit"}`, string(body[:n]))
}
