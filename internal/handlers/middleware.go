package handlers

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Anti-forgery names, shared with the browser client: the cookie the token
// lives in and the header mutating requests must echo it back on.
const (
	CSRFCookie = "csrftoken"
	CSRFHeader = "X-CSRFToken"
)

// CSRF implements the double-submit check: safe requests get a token cookie
// issued, mutating requests must carry the same value in the header. A
// mismatch is rejected before any handler runs.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if _, err := c.Cookie(CSRFCookie); err != nil {
				c.SetCookie(CSRFCookie, uuid.NewString(), 0, "/", "", false, false)
			}
			c.Next()
			return
		}

		cookie, err := c.Cookie(CSRFCookie)
		header := c.GetHeader(CSRFHeader)
		if err != nil || header == "" || subtle.ConstantTimeCompare([]byte(cookie), []byte(header)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "CSRF verification failed",
			})
			return
		}
		c.Next()
	}
}

// studentIDKey is where RequireStudent parks the authenticated id.
const studentIDKey = "student_id"

// RequireStudent reads the student identity the (external) auth layer left
// in the session cookie. Requests without one get a 401.
func RequireStudent() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie("student_id")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Please log in to continue",
			})
			return
		}
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Please log in to continue",
			})
			return
		}
		c.Set(studentIDKey, uint(id))
		c.Next()
	}
}

// CurrentStudent returns the authenticated student id for this request.
func CurrentStudent(c *gin.Context) uint {
	return c.GetUint(studentIDKey)
}
