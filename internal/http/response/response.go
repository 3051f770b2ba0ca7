package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/kotoba-backend/internal/pkg/apierr"
)

// ErrorEnvelope is the wire shape for failures: {"detail": "..."}.
type ErrorEnvelope struct {
	Detail string `json:"detail"`
}

func RespondError(c *gin.Context, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(apierr.Status(err), ErrorEnvelope{Detail: msg})
}

func RespondInvalid(c *gin.Context, err error) {
	msg := "invalid request"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusBadRequest, ErrorEnvelope{Detail: msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondSuccess writes the success envelope with any echoed fields merged
// beside the message.
func RespondSuccess(c *gin.Context, message string, data gin.H) {
	body := gin.H{
		"success": true,
		"message": message,
	}
	for k, v := range data {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}
