package utils

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// IsDevelopment reports whether the process runs in a development-mode
// configuration. Error detail is echoed to callers only in that mode.
func IsDevelopment() bool {
	return strings.ToLower(os.Getenv("ENVIRONMENT")) == "development"
}

// ServerError logs err and writes the generic 500 envelope. The underlying
// error text is included only in development mode.
func ServerError(c *gin.Context, message string, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)

	resp := gin.H{"success": false, "message": message}
	if IsDevelopment() && err != nil {
		resp["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
