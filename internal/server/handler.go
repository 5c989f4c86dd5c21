package server

import (
	"errors"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/charmbracelet/log"
)

// IndexFile is served for the root path.
const IndexFile = "index.html"

// NotFoundFile is the body of every 404 response.
const NotFoundFile = "404.html"

// mimeTypes maps file extensions to the Content-Type they are served with.
var mimeTypes = map[string]string{
	".html":        "text/html",
	".js":          "text/javascript",
	".mjs":         "text/javascript",
	".css":         "text/css",
	".json":        "application/json",
	".webmanifest": "application/manifest+json",
	".png":         "image/png",
	".jpg":         "image/jpeg",
	".gif":         "image/gif",
	".svg":         "image/svg+xml",
	".ico":         "image/x-icon",
	".wasm":        "application/wasm",
}

// ContentType returns the Content-Type for a file name.
func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// setCORS adds the permissive cross-origin headers every response carries.
func setCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// fileHandler serves files from an fs.FS. Paths are cleaned and rooted, so
// requests cannot reach outside the file system.
type fileHandler struct {
	root   fs.FS
	logger *log.Logger
}

// NewHandler returns a handler serving root.
func NewHandler(root fs.FS, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &fileHandler{root: root, logger: logger}
}

func (h *fileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORS(w.Header())

	name := resolve(r.URL.Path)
	content, err := h.read(name)
	switch {
	case err == nil:
		w.Header().Set("Content-Type", ContentType(name))
		w.WriteHeader(http.StatusOK)
		w.Write(content)
	case errors.Is(err, fs.ErrNotExist):
		h.notFound(w)
	default:
		code := errorCode(err)
		h.logger.Warn("cannot read file", "path", name, "code", code, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "Server Error: "+code)
	}
}

// resolve maps a URL path to a file name inside the root.
func resolve(urlPath string) string {
	if urlPath == "" || urlPath == "/" {
		return IndexFile
	}
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" {
		return IndexFile
	}
	return name
}

func (h *fileHandler) read(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	info, err := fs.Stat(h.root, name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errIsDir}
	}
	return fs.ReadFile(h.root, name)
}

func (h *fileHandler) notFound(w http.ResponseWriter) {
	body, err := fs.ReadFile(h.root, NotFoundFile)
	if err != nil {
		body = nil
	}
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	w.Write(body)
}

var errIsDir = errors.New("is a directory")

// errorCode names a read failure the way the 500 body reports it.
func errorCode(err error) string {
	switch {
	case errors.Is(err, errIsDir):
		return "EISDIR"
	case errors.Is(err, fs.ErrPermission):
		return "EACCES"
	case errors.Is(err, fs.ErrInvalid):
		return "EINVAL"
	default:
		return "EIO"
	}
}
