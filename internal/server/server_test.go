package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wordgrid/wordgrid/pkg/puzzle"
)

func newTestServer() *Server {
	return NewServer(NewMemoryStore(), nil, nil)
}

func postJSON(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	rr := get(newTestServer(), "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestCreatePuzzle(t *testing.T) {
	s := newTestServer()

	rr := postJSON(t, s, "/api/puzzles", createRequest{
		Title: "Animals",
		Words: []string{"cat", "dog", "lion"},
		Size:  10,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body)
	}

	var resp struct {
		ID       string          `json:"id"`
		Title    string          `json:"title"`
		Size     int             `json:"size"`
		Placed   int             `json:"placed"`
		Puzzle   json.RawMessage `json:"puzzle"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response has no id")
	}
	if resp.Size != 10 || resp.Title != "Animals" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Placed == 0 {
		t.Error("no words placed")
	}
	if _, err := puzzle.UnmarshalPuzzle(resp.Puzzle); err != nil {
		t.Errorf("embedded puzzle invalid: %v", err)
	}
}

func TestCreatePuzzleBadRequests(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name string
		body createRequest
	}{
		{"no words", createRequest{Size: 10}},
		{"bad size", createRequest{Words: []string{"cat"}, Size: 5}},
		{"bad mode", createRequest{Words: []string{"cat"}, Mode: "diagonal"}},
		{"bad word", createRequest{Words: []string{"c4t"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postJSON(t, s, "/api/puzzles", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, body: %s", rr.Code, rr.Body)
			}
			var e struct {
				Error string `json:"error"`
				Code  string `json:"code"`
			}
			if err := json.Unmarshal(rr.Body.Bytes(), &e); err != nil || e.Code == "" {
				t.Errorf("error body missing code: %s", rr.Body)
			}
		})
	}

	// Malformed JSON body.
	req := httptest.NewRequest(http.MethodPost, "/api/puzzles", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	s.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d", rr.Code)
	}
}

func TestListPuzzles(t *testing.T) {
	s := newTestServer()

	for _, title := range []string{"First", "Second"} {
		rr := postJSON(t, s, "/api/puzzles", createRequest{Title: title, Words: []string{"cat", "dog"}})
		if rr.Code != http.StatusCreated {
			t.Fatalf("create %s: status %d", title, rr.Code)
		}
	}

	rr := get(s, "/api/puzzles")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var records []Record
	if err := json.Unmarshal(rr.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestGetPuzzle(t *testing.T) {
	s := newTestServer()

	rr := postJSON(t, s, "/api/puzzles", createRequest{Words: []string{"cat", "dog"}})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	rr = get(s, "/api/puzzles/"+created.ID)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Puzzle json.RawMessage `json:"puzzle"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if _, err := puzzle.UnmarshalPuzzle(resp.Puzzle); err != nil {
		t.Errorf("stored puzzle invalid: %v", err)
	}

	rr = get(s, "/api/puzzles/nonexistent")
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing puzzle status = %d", rr.Code)
	}
}

func TestRenderPuzzle(t *testing.T) {
	s := newTestServer()

	rr := postJSON(t, s, "/api/puzzles", createRequest{Words: []string{"cat", "dog"}, Size: 10})
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatal(err)
	}

	// Default format is SVG.
	rr = get(s, "/api/puzzles/"+created.ID+"/render")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(rr.Body)
	if !bytes.HasPrefix(body, []byte("<svg ")) {
		t.Error("body is not SVG")
	}
	if bytes.Contains(body, []byte("<line ")) {
		t.Error("solution overlay present without solution=true")
	}

	// Solution overlay.
	rr = get(s, "/api/puzzles/"+created.ID+"/render?format=svg&solution=true")
	if !bytes.Contains(rr.Body.Bytes(), []byte("<line ")) {
		t.Error("solution overlay missing")
	}

	// Text format.
	rr = get(s, "/api/puzzles/"+created.ID+"/render?format=text")
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}

	// Invalid format.
	rr = get(s, "/api/puzzles/"+created.ID+"/render?format=docx")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("invalid format status = %d", rr.Code)
	}

	// Missing puzzle.
	rr = get(s, "/api/puzzles/nope/render")
	if rr.Code != http.StatusNotFound {
		t.Errorf("missing puzzle status = %d", rr.Code)
	}
}
