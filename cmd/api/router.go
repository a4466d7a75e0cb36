package api

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"ytnote/internal/note/delivery"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// SetupRouter builds the gin engine with templates, static assets, and
// all routes registered.
func SetupRouter(noteHandler *delivery.NoteHandler) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	tmpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	staticRoot, _ := fs.Sub(staticFS, "static")
	r.StaticFS("/static", http.FS(staticRoot))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", noteHandler.Index)
	r.POST("/transcript", noteHandler.CreateTranscript)
	r.POST("/summarize", noteHandler.Summarize)
	r.POST("/note", noteHandler.WriteNote)

	return r
}
