package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hackathon-hub/internal/utils"
)

// Placeholder renders the generated SVG banner for seed and title.
func Placeholder(c *gin.Context) {
	svg := utils.RenderPlaceholderSVG(c.Query("seed"), c.Query("title"))

	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
