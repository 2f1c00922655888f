package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"
)

// RequestID проставляет каждому запросу идентификатор для связывания логов
func RequestID() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		requestID := gCtx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		gCtx.Set(requestIDKey, requestID)
		gCtx.Writer.Header().Set(requestIDHeader, requestID)

		gCtx.Next()
	}
}

// RequestLogger пишет строку доступа: метод, путь, статус, длительность
func RequestLogger() gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		start := time.Now()

		gCtx.Next()

		logrus.WithFields(logrus.Fields{
			"request_id": gCtx.GetString(requestIDKey),
			"status":     gCtx.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Infof("%s %s", gCtx.Request.Method, gCtx.Request.URL.Path)
	}
}
