package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smartude/internal/account"
	"smartude/pkg/response"
)

// SignUp godoc
// @Summary     Create an account
// @Description Registers with email and password. The session is pending until the email is confirmed.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Weak password or bad request"
// @Failure     409 {object} response.Resp "Account exists"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     503 {object} response.Resp "Service unavailable"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(out.Session))
}

// SignIn godoc
// @Summary     Sign in
// @Description Signs in with email and password.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     403 {object} response.Resp "Email not confirmed"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     503 {object} response.Resp "Service unavailable"
// @Router      /api/v1/auth/signin [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s))
}

// SignOut godoc
// @Summary     Sign out
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.SignOut(ctx); err != nil {
		h.l.Errorf(ctx, "uc.SignOut: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(account.Anonymous()))
}

// Session godoc
// @Summary     Current session
// @Description Returns the restored session. When the account service is unreachable the session is anonymous and a warning is set.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	s, err := h.uc.CurrentSession(ctx)
	resp := newSessionResp(s)
	if err != nil {
		resp.Warning = account.KindOf(err).Message()
	}

	response.OK(c, resp)
}

// ExternalSignIn godoc
// @Summary     Start external sign-in
// @Description Returns the provider URL to visit, or redirects there when redirect=true.
// @Tags        Auth
// @Produce     json
// @Param       provider path  string true  "Provider, e.g. google"
// @Param       redirect query bool   false "Respond with 302 instead of JSON"
// @Success     200 {object} externalSignInResp
// @Failure     400 {object} response.Resp "Provider not available"
// @Router      /api/v1/auth/oauth/{provider} [GET]
func (h *handler) ExternalSignIn(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.SignInWithExternalProvider(ctx, c.Param("provider"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	if c.Query("redirect") == "true" {
		c.Redirect(http.StatusFound, out.RedirectURL)
		return
	}

	response.OK(c, externalSignInResp{Provider: out.Provider, RedirectURL: out.RedirectURL})
}

// Callback godoc
// @Summary     External sign-in callback
// @Description Completes an external sign-in with the code returned by the provider.
// @Tags        Auth
// @Produce     json
// @Param       code  query string true "Authorization code"
// @Param       state query string true "State issued when the sign-in started"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Provider error"
// @Failure     401 {object} response.Resp "Unknown or expired sign-in"
// @Router      /api/v1/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCallbackReq(c)
	if err != nil {
		h.l.Warnf(ctx, "external sign-in failed: %s %s", req.Error, req.ErrorDescription)
		response.Error(c, err, nil)
		return
	}

	s, err := h.uc.CompleteExternalSignIn(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSessionResp(s))
}

// GetProfile godoc
// @Summary     Get profile
// @Tags        Account
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Router      /api/v1/account/profile [GET]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Profile(ctx)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(p))
}

// UpdateProfile godoc
// @Summary     Update profile
// @Tags        Account
// @Accept      json
// @Produce     json
// @Param       body body updateProfileReq true "Fields to change"
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Router      /api/v1/account/profile [PUT]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateProfileReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	p, err := h.uc.UpdateProfile(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProfileResp(p))
}
