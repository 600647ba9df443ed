package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
)

func itoa(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}
