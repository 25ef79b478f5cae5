package public

import (
	"github.com/cartnext/internal/http/response"

	"github.com/gin-gonic/gin"
)

const sessionIDContextKey = "session_id"

// getSessionID 获取会话中间件写入的会话标识
func getSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(sessionIDContextKey)
	if ok {
		if sessionID, ok := value.(string); ok && sessionID != "" {
			return sessionID, true
		}
	}
	respondError(c, response.CodeBadRequest, "会话标识缺失", nil)
	return "", false
}
