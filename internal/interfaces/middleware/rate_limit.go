package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/paulossjunior/dynamic-forms/pkg/constants"
	"github.com/paulossjunior/dynamic-forms/pkg/errors"
	"github.com/paulossjunior/dynamic-forms/pkg/ratelimiter"
)

// RateLimit rejects clients that exhaust their per-IP token bucket with 429.
// A nil limiter disables the check.
func RateLimit(limiter *ratelimiter.MapLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter.Allow(c.ClientIP(), time.Now()) {
			c.Next()
			return
		}
		err := &errors.TooManyRequestsError{}
		c.AbortWithStatusJSON(err.HTTPStatus(), gin.H{
			constants.ResponseError: err.Error(),
			constants.FieldMessage:  err.Error(),
			constants.ResponseCode:  err.Code(),
			constants.ResponseData:  nil,
		})
	}
}
