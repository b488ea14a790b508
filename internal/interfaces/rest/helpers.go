package rest

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/utils"
)

// RespondAppError sends a standardised JSON error response using pkg/errors
func RespondAppError(c *gin.Context, err error) {
	code := errors.GetHTTPStatus(err)
	errorCode := errors.GetErrorCode(err)
	message := err.Error()

	if code >= 500 {
		log.Printf("❌ ERROR [%d] %s %s: %s", code, c.Request.Method, c.Request.URL.Path, message)
	}

	c.JSON(code, gin.H{
		constants.ResponseError: message, // Legacy
		constants.FieldMessage:  message, // Standard
		constants.ResponseCode:  errorCode,
		constants.ResponseData:  nil,
	})
}

// Recovery turns a handler panic into a 500 error envelope
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		RespondAppError(c, errors.NewInternalError("unexpected panic", fmt.Errorf("%v", recovered)))
		c.Abort()
	})
}

// BindJSON binds JSON and returns true if successful. If failed, it sends bad request error.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		RespondAppError(c, errors.NewValidationError("body", err.Error()))
		return false
	}
	return true
}

// ParseIDParam reads a positive numeric path parameter. On failure it responds with 400.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, ok := utils.ParseID(c.Param(name))
	if !ok {
		RespondAppError(c, errors.NewValidationError(name, "must be a positive integer"))
		return 0, false
	}
	return id, true
}

// HandleGetEnvelope executes a read action and returns the result wrapped in a JSON key
// Response: { [key]: result }
func HandleGetEnvelope(c *gin.Context, key string, action func() (interface{}, error)) {
	result, err := action()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{key: result})
}

// HandleCreateEnvelope binds the request, runs the create action and returns its result + message
// Response: { constants.FieldMessage: successMsg, [key]: result }
func HandleCreateEnvelope(c *gin.Context, key string, successMsg string, req interface{}, action func() (interface{}, error)) {
	handleWrite(c, http.StatusCreated, key, successMsg, req, action)
}

// HandleUpdateEnvelope binds the request, runs the update action and returns its result + message
// Response: { constants.FieldMessage: successMsg, [key]: result }
func HandleUpdateEnvelope(c *gin.Context, key string, successMsg string, req interface{}, action func() (interface{}, error)) {
	handleWrite(c, http.StatusOK, key, successMsg, req, action)
}

func handleWrite(c *gin.Context, status int, key, successMsg string, req interface{}, action func() (interface{}, error)) {
	if req != nil && !BindJSON(c, req) {
		return
	}
	result, err := action()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	response := gin.H{constants.FieldMessage: successMsg}
	if key != "" {
		response[key] = result
	}
	c.JSON(status, response)
}

// HandleDeleteEnvelope executes a delete action and returns a success message
// Response: { constants.FieldMessage: successMsg }
func HandleDeleteEnvelope(c *gin.Context, successMsg string, action func() error) {
	if err := action(); err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.FieldMessage: successMsg})
}
