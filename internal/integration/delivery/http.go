package delivery

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
)

// Attachment delivers exports as an HTTP file download on a gin response.
type Attachment struct {
	ctx *gin.Context
}

// NewAttachment creates an attachment delivery bound to the current request.
func NewAttachment(ctx *gin.Context) *Attachment {
	return &Attachment{ctx: ctx}
}

// Deliver writes the file as a download.
func (a *Attachment) Deliver(ctx context.Context, filename, contentType string, content []byte) error {
	a.ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	a.ctx.Data(http.StatusOK, contentType, content)
	return nil
}

// InlineDocument renders the printable document inline in the browser tab, which then prints itself.
type InlineDocument struct {
	ctx *gin.Context
}

// NewInlineDocument creates a print surface bound to the current request.
func NewInlineDocument(ctx *gin.Context) *InlineDocument {
	return &InlineDocument{ctx: ctx}
}

// Open prepares the response headers. The status is sent on the first write.
func (d *InlineDocument) Open(ctx context.Context, name string) (io.WriteCloser, error) {
	if d.ctx.Writer.Written() {
		return nil, fmt.Errorf("response already started")
	}
	d.ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", name))
	d.ctx.Header("Content-Type", adapter.ContentTypeHTML)
	return &responseSurface{w: d.ctx.Writer}, nil
}

type responseSurface struct {
	w gin.ResponseWriter
}

func (s *responseSurface) Write(p []byte) (int, error) {
	if !s.w.Written() {
		s.w.WriteHeader(http.StatusOK)
	}
	return s.w.Write(p)
}

func (s *responseSurface) Close() error {
	s.w.Flush()
	return nil
}

var (
	_ adapter.FileDelivery = (*Attachment)(nil)
	_ adapter.PrintSurface = (*InlineDocument)(nil)
)
