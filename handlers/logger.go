package handlers

import (
	"go.uber.org/zap"

	"careport/utils"
)

// getLogger returns the request-scoped logger.
func getLogger() *zap.Logger {
	return utils.GetLogger()
}
