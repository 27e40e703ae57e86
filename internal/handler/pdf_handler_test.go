package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"pdf-toolkit/internal/domain"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestMergeHandler_Success(t *testing.T) {
	engine := &MockEngine{}
	h := NewPDFHandler(engine, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Merge, `{"paths":["/a.pdf","/b.pdf"],"output_path":"/out.pdf"}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var res opResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !res.OK || res.OutputPath != "/out.pdf" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestMergeHandler_MissingOutputPath(t *testing.T) {
	h := NewPDFHandler(&MockEngine{}, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Merge, `{"paths":["/a.pdf"]}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestMergeHandler_NotFoundMapsTo404(t *testing.T) {
	engine := &MockEngine{err: domain.ErrNotFound}
	h := NewPDFHandler(engine, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Merge, `{"paths":["/a.pdf","/b.pdf"],"output_path":"/out.pdf"}`)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
}

func TestExtractHandler_ParsesSelection(t *testing.T) {
	engine := &MockEngine{}
	h := NewPDFHandler(engine, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Extract, `{"path":"/a.pdf","pages":"2-4","output_path":"/out.pdf"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(engine.lastIndices, want) {
		t.Fatalf("expected zero-based indices %v, got %v", want, engine.lastIndices)
	}
}

func TestExtractHandler_BadSelection(t *testing.T) {
	h := NewPDFHandler(&MockEngine{}, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Extract, `{"path":"/a.pdf","pages":"x","output_path":"/out.pdf"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestDecryptHandler_WrongPasswordIsOK200(t *testing.T) {
	engine := &MockEngine{decryptOK: false}
	h := NewPDFHandler(engine, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Decrypt, `{"path":"/a.pdf","output_path":"/out.pdf","password":"wrong"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("decrypt failure is reported in-band, expected 200, got %d", rr.Code)
	}

	var res opResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.OK {
		t.Fatal("expected ok=false for a wrong password")
	}
	if res.OutputPath != "" {
		t.Fatalf("no output path expected on failure, got %q", res.OutputPath)
	}
}

func TestAnnotateHandler_OutOfRange(t *testing.T) {
	engine := &MockEngine{err: domain.ErrPageOutOfRange}
	h := NewPDFHandler(engine, 8.0, NewMockHandlerLogger())

	rr := postJSON(t, h.Annotate, `{"path":"/a.pdf","page":9,"text":"x","x":1,"y":1,"output_path":"/out.pdf"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestInfoHandler(t *testing.T) {
	engine := &MockEngine{info: &domain.DocumentInfo{PageCount: 7, Title: "N/A"}}
	h := NewPDFHandler(engine, 8.0, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/?path=/a.pdf", nil)
	rr := httptest.NewRecorder()
	h.Info(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	var info domain.DocumentInfo
	if err := json.Unmarshal(rr.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if info.PageCount != 7 || info.Title != "N/A" {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestInfoHandler_PathRequired(t *testing.T) {
	h := NewPDFHandler(&MockEngine{}, 8.0, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	h.Info(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}

func TestRenderHandler_ReturnsPNG(t *testing.T) {
	h := NewPDFHandler(&MockEngine{}, 8.0, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/?path=/a.pdf&page=0&zoom=2", nil)
	rr := httptest.NewRecorder()
	h.Render(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	// PNG magic bytes.
	if body := rr.Body.Bytes(); len(body) < 4 || string(body[1:4]) != "PNG" {
		t.Fatal("response body is not a PNG")
	}
}

func TestRenderHandler_BadZoom(t *testing.T) {
	h := NewPDFHandler(&MockEngine{}, 8.0, NewMockHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/?path=/a.pdf&zoom=-1", nil)
	rr := httptest.NewRecorder()
	h.Render(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
