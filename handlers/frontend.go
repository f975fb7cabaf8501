package handlers

import (
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/DeloitteITPraktikum/AI-Agent-Portfolio-Analysis/models"

	"github.com/gin-gonic/gin"
)

// Sub-directories of the bundle that are mounted as-is when present.
var bundleDirs = []string{"static", "img", "js", "pages"}

func (h *Handlers) registerFrontend(r *gin.Engine) {
	for _, dir := range bundleDirs {
		full := filepath.Join(h.buildDir, dir)
		if isDir(full) {
			r.Static("/"+dir, full)
			log.Printf("Serving /%s from %s", dir, full)
		}
	}

	r.GET("/manifest.json", h.bundleFileHandler("manifest.json"))
	r.GET("/favicon.ico", h.bundleFileHandler("favicon.ico"))

	r.NoRoute(h.SPAHandler)
}

// bundleFileHandler serves one top-level bundle file or answers 404.
func (h *Handlers) bundleFileHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := filepath.Join(h.buildDir, name)
		if !isFile(p) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: name + " nicht gefunden"})
			return
		}
		serveFile(c, p)
	}
}

// SPAHandler serves a literal file from the build root when one matches the
// request path and index.html otherwise, so client-side routes load the app.
func (h *Handlers) SPAHandler(c *gin.Context) {
	method := c.Request.Method
	if (method != http.MethodGet && method != http.MethodHead) || strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
		return
	}

	if p := h.bundlePath(c.Request.URL.Path); isFile(p) {
		serveFile(c, p)
		return
	}

	index := h.bundleIndex()
	if !isFile(index) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "index.html nicht gefunden"})
		return
	}
	serveFile(c, index)
}

// serveFile writes the file at p. The path is already resolved inside the
// build root, so the request URL is not consulted again.
func serveFile(c *gin.Context, p string) {
	f, err := os.Open(p)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: filepath.Base(p) + " nicht gefunden"})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Detail: err.Error()})
		return
	}
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}

// bundlePath maps a URL path into the build root. Cleaning against "/" keeps
// ".." segments from leaving the root.
func (h *Handlers) bundlePath(urlPath string) string {
	clean := path.Clean("/" + urlPath)
	return filepath.Join(h.buildDir, filepath.FromSlash(clean))
}

func (h *Handlers) bundleIndex() string {
	return filepath.Join(h.buildDir, "index.html")
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
