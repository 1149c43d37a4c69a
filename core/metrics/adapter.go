package metrics

import (
	"bytes"
	"io"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler exposes the Prometheus registry on a fiber route.
func Handler() fiber.Handler {
	h := promhttp.Handler()

	return func(c *fiber.Ctx) error {
		w := &fiberResponseWriter{ctx: c, header: make(http.Header)}
		h.ServeHTTP(w, adaptRequest(c))
		return nil
	}
}

// fiberResponseWriter adapts the fiber response to http.ResponseWriter so the
// stock promhttp handler can serve it.
type fiberResponseWriter struct {
	ctx         *fiber.Ctx
	header      http.Header
	wroteHeader bool
}

func (w *fiberResponseWriter) Header() http.Header {
	return w.header
}

func (w *fiberResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	for key, values := range w.header {
		for _, value := range values {
			w.ctx.Set(key, value)
		}
	}
	w.ctx.Status(status)
}

func (w *fiberResponseWriter) Write(p []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ctx.Write(p)
}

// adaptRequest rebuilds a net/http request from the fiber context.
func adaptRequest(c *fiber.Ctx) *http.Request {
	req := &http.Request{
		Method: c.Method(),
		URL: &url.URL{
			Path:     c.Path(),
			RawQuery: string(c.Request().URI().QueryString()),
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Body:       io.NopCloser(bytes.NewReader(c.Body())),
		Host:       c.Hostname(),
		RequestURI: string(c.Request().RequestURI()),
	}

	c.Request().Header.VisitAll(func(key, value []byte) {
		req.Header.Add(string(key), string(value))
	})

	return req
}
