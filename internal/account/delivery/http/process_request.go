package http

import "github.com/gin-gonic/gin"

func (h *handler) processSignUpReq(c *gin.Context) (signUpReq, error) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCallbackReq(c *gin.Context) (callbackReq, error) {
	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processUpdateProfileReq(c *gin.Context) (updateProfileReq, error) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
