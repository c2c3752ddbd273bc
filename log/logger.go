package log

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/shiena/ansicolor"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Fields wraps logrus.Fields, which is a map[string]interface{}
type Fields logrus.Fields

// SetupLogger configures the shared logger from the configured level.
func SetupLogger(level string) {
	// use ansicolor to add console color
	Log.SetOutput(ansicolor.NewAnsiColorWriter(os.Stdout))
	Log.SetLevel(logLevelSwitcher(level))
	// add caller message(method and file)
	Log.SetReportCaller(true)
	Log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		ForceQuote:      true,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
}

func logLevelSwitcher(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	}
	return logrus.InfoLevel
}

// LogReq print request header and body with `debug` level log.
//
// use io.NopCloser to copy request body, so req.Body can be read again
//
// !: need to use this **before** manually read from body using `io.ReadAll(req.Body)`
func LogReq(req *http.Request) {
	if Log.Level < logrus.DebugLevel {
		return
	}
	reqBody := []byte{}
	if req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	Log.WithFields(logrus.Fields{
		"host":   req.Host,
		"path":   req.URL.Path,
		"header": formatHeader(req.Header),
	}).Debugf("request to be sent: %s", string(reqBody))
}

// LogRes print response header and body with `debug` level log.
//
// use io.NopCloser to copy response body, so res.Body can be read again
//
// !: need to use this **before** manually read from body using `io.ReadAll(res.Body)`
func LogRes(res *http.Response) {
	if Log.Level < logrus.DebugLevel {
		return
	}
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		Log.Errorln("io.ReadAll: ", err)
		return
	}
	res.Body = io.NopCloser(bytes.NewReader(resBody))

	Log.WithFields(logrus.Fields{
		"status": res.StatusCode,
		"header": formatHeader(res.Header),
	}).Debugf("response received: %s", string(resBody))
}

func formatHeader(header http.Header) string {
	var sb strings.Builder
	for k, v := range header {
		// never leak the bearer credential into logs
		if strings.EqualFold(k, "Authorization") {
			sb.WriteString(k + ": [REDACTED] ")
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: [%s] ", k, strings.Join(v, ", ")))
	}
	return sb.String()
}
