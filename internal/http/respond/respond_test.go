package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/biztime/internal/apperr"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
)

type envelope struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

func serve(t *testing.T, fn respond.HandlerFunc) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	respond.Handle(fn).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"BadRequest", apperr.BadRequest("bad input"), http.StatusBadRequest, "bad input"},
		{"NotFound", apperr.NotFound("gone"), http.StatusNotFound, "gone"},
		{"Unauthorized", apperr.Unauthorized(""), http.StatusUnauthorized, "Unauthorized"},
		{"Unclassified", errors.New("pq: secret detail"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := serve(t, func(http.ResponseWriter, *http.Request) error { return tt.err })

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, env.Error.Status)
			assert.Equal(t, tt.wantMsg, env.Error.Message)
			assert.NotContains(t, rec.Body.String(), "secret detail")
		})
	}
}

func TestHandle_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.Handle(func(w http.ResponseWriter, _ *http.Request) error {
		respond.JSON(w, http.StatusCreated, respond.Status{Status: "created"})
		return nil
	}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"status":"created"}`, rec.Body.String())
}

type payload struct {
	Code *string `json:"code" validate:"required"`
	Name *string `json:"name" validate:"required"`
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "Valid", body: `{"code":"apple","name":""}`},
		{name: "MissingName", body: `{"code":"apple"}`, wantErr: "missing required fields: name"},
		{name: "NullBody", body: `null`, wantErr: "missing required fields: code, name"},
		{name: "Empty", body: ``, wantErr: "request body is required"},
		{name: "Malformed", body: `{"code":1}`, wantErr: "invalid JSON body"},
		{name: "TrailingWhitespace", body: "{\"code\":\"apple\",\"name\":\"\"}\n"},
		{name: "TrailingData", body: `{"code":"apple","name":""} junk`, wantErr: "request body must contain a single JSON object"},
		{name: "SecondObject", body: `{"code":"apple","name":""}{}`, wantErr: "request body must contain a single JSON object"},
		{name: "TooLarge", body: `{"code":"` + strings.Repeat("a", 64) + `","name":""}`, wantErr: "request body too large"},
		{name: "TooLargeAfterObject", body: `{"code":"apple","name":""}` + strings.Repeat(" ", 64), wantErr: "request body too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Body = http.MaxBytesReader(rec, req.Body, 48)

			var p payload
			err := respond.Decode(req, &p)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "apple", *p.Code)

				return
			}

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status())
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

type nullablePayload struct {
	Description respond.NullString `json:"description" validate:"required"`
}

func TestDecode_NullString(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *string
		wantErr string
	}{
		{name: "Value", body: `{"description":"Maker of iPhone"}`, want: new("Maker of iPhone")},
		{name: "Empty", body: `{"description":""}`, want: new("")},
		{name: "Null", body: `{"description":null}`, want: nil},
		{name: "Missing", body: `{}`, wantErr: "missing required fields: description"},
		{name: "WrongType", body: `{"description":1}`, wantErr: "invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var p nullablePayload
			err := respond.Decode(req, &p)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.True(t, p.Description.Set)
				assert.Equal(t, tt.want, p.Description.Value)

				return
			}

			var appErr *apperr.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}
