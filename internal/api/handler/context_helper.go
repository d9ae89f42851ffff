package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HFrancia/AlumnosTKD3/pkg/response"
)

// idParam extracts the numeric :id path parameter. On a malformed id it
// writes the 400 acknowledgement and reports ok=false.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Identificador inválido")
		return 0, false
	}
	return uint(id), true
}
