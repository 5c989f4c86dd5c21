package server

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/charmbracelet/log"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":        {Data: []byte("<html>snake</html>")},
		"404.html":          {Data: []byte("<h1>Not here</h1>")},
		"game.js":           {Data: []byte("console.log(1)")},
		"styles.css":        {Data: []byte("body{}")},
		"manifest.json":     {Data: []byte("{}")},
		"snake.wasm":        {Data: []byte{0x00, 0x61, 0x73, 0x6d}},
		"data.bin":          {Data: []byte{1, 2, 3}},
		"icons/icon-72.png": {Data: []byte("png")},
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
	for k, v := range want {
		if got := rec.Header().Get(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestServeFiles(t *testing.T) {
	h := NewHandler(testFS(), nil)

	tests := []struct {
		path        string
		contentType string
		body        string
	}{
		{"/", "text/html", "<html>snake</html>"},
		{"/index.html", "text/html", "<html>snake</html>"},
		{"/game.js", "text/javascript", "console.log(1)"},
		{"/styles.css", "text/css", "body{}"},
		{"/manifest.json", "application/json", "{}"},
		{"/snake.wasm", "application/wasm", "\x00asm"},
		{"/data.bin", "application/octet-stream", "\x01\x02\x03"},
		{"/icons/icon-72.png", "image/png", "png"},
		{"/icons/../game.js", "text/javascript", "console.log(1)"},
		{"/?v=2", "text/html", "<html>snake</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, h, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", got, tt.contentType)
			}
			if rec.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.body)
			}
			assertCORS(t, rec)
		})
	}
}

func TestNotFound(t *testing.T) {
	h := NewHandler(testFS(), nil)

	for _, p := range []string{"/missing.js", "/../../etc/passwd", "/icons/nope.png"} {
		t.Run(p, func(t *testing.T) {
			rec := get(t, h, p)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", rec.Code)
			}
			if got := rec.Header().Get("Content-Type"); got != "text/html" {
				t.Errorf("Content-Type = %q", got)
			}
			if rec.Body.String() != "<h1>Not here</h1>" {
				t.Errorf("body = %q", rec.Body.String())
			}
			assertCORS(t, rec)
		})
	}
}

func TestNotFoundWithoutPage(t *testing.T) {
	h := NewHandler(fstest.MapFS{"index.html": {Data: []byte("x")}}, nil)

	rec := get(t, h, "/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestDirectoryIsServerError(t *testing.T) {
	h := NewHandler(testFS(), nil)

	rec := get(t, h, "/icons")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() != "Server Error: EISDIR" {
		t.Errorf("body = %q", rec.Body.String())
	}
	assertCORS(t, rec)
}

type permFS struct{}

func (permFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func TestPermissionIsServerError(t *testing.T) {
	rec := get(t, NewHandler(permFS{}, nil), "/index.html")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() != "Server Error: EACCES" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		"a.html":             "text/html",
		"a.mjs":              "text/javascript",
		"A.PNG":              "image/png",
		"a.jpg":              "image/jpeg",
		"a.gif":              "image/gif",
		"a.svg":              "image/svg+xml",
		"favicon.ico":        "image/x-icon",
		"app.webmanifest":    "application/manifest+json",
		"noext":              "application/octet-stream",
		"archive.tar.gz":     "application/octet-stream",
		"icons/icon-512.png": "image/png",
	}
	for name, want := range tests {
		if got := ContentType(name); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestOverlay(t *testing.T) {
	disk := fstest.MapFS{"snake.wasm": {Data: []byte("fresh")}, "index.html": {Data: []byte("disk")}}
	embedded := fstest.MapFS{"index.html": {Data: []byte("embedded")}, "404.html": {Data: []byte("nf")}}
	h := NewHandler(Overlay(disk, embedded), nil)

	if body := get(t, h, "/").Body.String(); body != "disk" {
		t.Errorf("index = %q, want disk copy", body)
	}
	if body := get(t, h, "/snake.wasm").Body.String(); body != "fresh" {
		t.Errorf("wasm = %q", body)
	}
	rec := get(t, h, "/missing")
	if rec.Code != http.StatusNotFound || rec.Body.String() != "nf" {
		t.Errorf("missing = %d %q", rec.Code, rec.Body.String())
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	s := New(Config{Root: testFS()}, logger)

	get(t, s.Handler(), "/missing.js")

	out := buf.String()
	for _, want := range []string{"request", "GET", "/missing.js", "404"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestWriteBanner(t *testing.T) {
	var buf bytes.Buffer
	WriteBanner(&buf, "3000", []string{"192.168.1.5", "10.0.0.2"})

	out := buf.String()
	for _, want := range []string{
		"Server is running!",
		"http://192.168.1.5:3000",
		"http://10.0.0.2:3000",
		"Add to Home Screen",
		"Press Ctrl+C to stop the server",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	WriteBanner(&buf, "3000", nil)
	if !strings.Contains(buf.String(), "http://localhost:3000") {
		t.Errorf("banner without interfaces:\n%s", buf.String())
	}
}

func TestServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	var banner bytes.Buffer
	s := New(Config{Root: testFS(), Banner: &banner, ShutdownTimeout: time.Second}, log.New(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "<html>snake</html>" {
		t.Errorf("GET / = %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
