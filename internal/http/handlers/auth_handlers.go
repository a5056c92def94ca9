package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/product-catalog/internal/auth"
)

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

// LoginHandler godoc
// @Summary Log in as the administrator and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {array} app.FieldError
// @Failure 401 {object} middleware.ErrorResponse
// @Router /api/login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		badRequest(w, "body", err.Error())
		return
	}
	if creds.Username == "" || creds.Password == "" {
		badRequest(w, "credentials", "username and password are required")
		return
	}

	if !admin.Verify(creds.Username, creds.Password) {
		logger.WithField("username", creds.Username).Warn("failed login")
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := tokens.Generate(creds.Username, auth.RoleAdmin)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond(w, http.StatusOK, LoginResult{Token: token})
}

func claimsFrom(r *http.Request) (auth.Claims, bool) {
	return auth.ClaimsFromContext(r.Context())
}
