package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	licenses *MockLicenseService
	files    *MockFileService
	auth     *MockAuthService
	activity *MockActivityService
	briefs   *MockBriefService
}

func newTestRouter(g Guards) (*gin.Engine, *testServices) {
	gin.SetMode(gin.TestMode)

	s := &testServices{
		licenses: new(MockLicenseService),
		files:    new(MockFileService),
		auth:     new(MockAuthService),
		activity: new(MockActivityService),
		briefs:   new(MockBriefService),
	}

	r := gin.New()
	Register(r, Handlers{
		Licenses: NewLicenseHandler(s.licenses),
		Files:    NewFileHandler(s.files),
		Auth:     NewAuthHandler(s.auth),
		Activity: NewActivityHandler(s.activity),
		Briefs:   NewBriefHandler(s.briefs),
	}, g)
	return r, s
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, target, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var body interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
