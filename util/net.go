package util

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/growthops/deeplink-checker/log"
)

// PostWithHeader issues a JSON POST with the given headers. The caller
// owns the client, so timeouts and transport reuse are decided there.
func PostWithHeader(ctx context.Context, client *http.Client, url string, header map[string]string, body any) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		log.Log.Errorln("http.NewRequest ::: ", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	log.LogReq(req)

	res, err := client.Do(req)
	if err != nil {
		log.Log.Errorln("client.Do ::: ", err)
		return nil, err
	}

	log.LogRes(res)
	return res, nil
}

// PostRaw issues a POST with a pre-serialized body, used by the proxy
// route which forwards the caller's payload untouched.
func PostRaw(ctx context.Context, client *http.Client, url string, header map[string]string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Log.Errorln("http.NewRequest ::: ", err)
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}

	log.LogReq(req)

	res, err := client.Do(req)
	if err != nil {
		log.Log.Errorln("client.Do ::: ", err)
		return nil, err
	}

	log.LogRes(res)
	return res, nil
}
