package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware returns a huma middleware that logs one structured entry per request.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		ctx = huma.WithValue(ctx, logDataContextKey{}, logData)

		endTimer := logData.AddTiming("duration")
		next(ctx)
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Info("Rest.Request.Complete")
	}
}
