package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stylencms/internal/service"
)

const (
	sessionUserID   = "user_id"
	sessionUsername = "username"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 校验账号密码并写入会话。
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	user, err := a.users.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "login failed")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionUserID, user.ID)
	session.Set(sessionUsername, user.Username)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Logout 清除会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
	c.Status(http.StatusNoContent)
}

// Me reports the logged in editor.
func (a *API) Me(c *gin.Context) {
	session := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{"username": session.Get(sessionUsername)})
}

// AuthRequired 拦截未登录的后台请求。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionUserID) == nil {
			respondError(c, http.StatusUnauthorized, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RunSeed fills empty entity kinds with the built-in content and reports
// what happened per kind.
func (a *API) RunSeed(c *gin.Context) {
	report := a.seed.Seed(c.Request.Context())
	status := http.StatusOK
	if report.Err() != nil {
		status = http.StatusMultiStatus
	}
	c.JSON(status, report)
}
