package response

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Response struct {
	Success bool        `json:"success"`
	ErrCode int         `json:"err_code"`
	ErrMsg  string      `json:"err_msg"`
	Data    interface{} `json:"data"`
}

func Success(data any) Response {
	return Response{
		Success: true,
		ErrCode: http.StatusOK,
		ErrMsg:  "",
		Data:    data,
	}
}

func Failed(e error) Response {
	if e, ok := e.(LocalError); ok {
		return Response{
			Success: false,
			ErrCode: e.ErrCode,
			ErrMsg:  e.ErrMsg,
			Data:    nil,
		}
	}
	return Response{
		Success: false,
		ErrCode: 5001,
		ErrMsg:  e.Error(),
		Data:    nil,
	}
}

// FailedWithData is Failed with a payload attached, used when an error
// still carries a body worth returning (upstream errors, semantic
// failures).
func FailedWithData(e error, data any) Response {
	r := Failed(e)
	r.Data = data
	return r
}

type LocalError struct {
	ErrCode int
	ErrMsg  string
	Err     error
}

// Error implement error interface
func (e LocalError) Error() string {
	return fmt.Sprintf("err_code: %d, err_msg: %s, err: %v", e.ErrCode, e.ErrMsg, e.Err)
}

// Create common error
var (
	// Request error
	REQUIRED_PARAMS = LocalError{ErrCode: 2001, ErrMsg: "required params"}
	// Forwarder error
	TOKEN_NOT_CONFIGURED = LocalError{ErrCode: 4001, ErrMsg: "authentication token not configured"}
	NETWORK_ERROR        = LocalError{ErrCode: 4002, ErrMsg: "upstream network error"}
	UPSTREAM_ERROR       = LocalError{ErrCode: 4003, ErrMsg: "upstream returned non-success status"}
	INVALID_RESPONSE     = LocalError{ErrCode: 4004, ErrMsg: "upstream response is not valid JSON"}
	CHECK_FAILED         = LocalError{ErrCode: 4005, ErrMsg: "deeplink check failed"}
	// Internal error
	INTERNAL_ERROR = LocalError{ErrCode: 5001, ErrMsg: "internal error"}
)

// warp error
func (e *LocalError) Wrap(err error) LocalError {
	e.Err = err
	return *e
}

// determine whether the error is equal
func (e *LocalError) Is(err error) bool {
	if err, ok := err.(LocalError); ok {
		return err.ErrCode == e.ErrCode
	}
	return false
}

// Error return error response for echo
//
// It can handle different types of errors:
// 1. LocalError, it will return the error code and message
// 2. error, it will return the error message
// 3. string, it will return the error message
func Error(c echo.Context, err interface{}) error {
	switch e := err.(type) {
	case LocalError:
		return c.JSON(http.StatusInternalServerError, Failed(e))
	case error:
		return c.JSON(http.StatusInternalServerError, Failed(e))
	case string:
		return c.JSON(http.StatusInternalServerError, Failed(fmt.Errorf("%s", e)))
	default:
		return c.JSON(http.StatusInternalServerError, Failed(INTERNAL_ERROR))
	}
}
