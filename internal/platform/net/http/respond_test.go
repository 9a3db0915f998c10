package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "workdays/internal/platform/errors"
	wnet "workdays/internal/platform/net"
	phttp "workdays/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req = req.WithContext(wnet.WithRequest(req.Context(), rid))
	return req
}

func TestJSONAndStatusHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type: %q", ct)
	}

	rec2 := httptest.NewRecorder()
	phttp.JSONStatus(rec2, http.StatusAccepted)
	if rec2.Code != http.StatusAccepted || rec2.Body.String() != "{}\n" {
		t.Fatalf("JSONStatus: %d %q", rec2.Code, rec2.Body.String())
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-1")
	phttp.RespondOK(rec, req, map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError_MapsCodeToStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	req := reqWithReqID("GET", "/x", "rid-2")
	phttp.RespondError(rec, req, perr.Validationf("days must be present"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var env phttp.Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	if env.Code != perr.ErrorCodeValidation || env.Error == "" || env.RequestID != "rid-2" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestResponseWrite_ReturnStyle(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		if r.URL.Path == "/boom" {
			return phttp.Error(perr.Unavailablef("down"))
		}
		if r.URL.Path == "/empty" {
			return phttp.NoContent()
		}
		return phttp.OK(map[string]int{"n": 1})
	})

	// success envelope
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/ok", "rid-3"))
	if rec.Code != http.StatusOK {
		t.Fatalf("OK: %d", rec.Code)
	}

	// error envelope derives status from code
	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/boom", "rid-4"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Error: %d", rec.Code)
	}

	// 204 has no body
	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/empty", "rid-5"))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("NoContent: %d %q", rec.Code, rec.Body.String())
	}
}
