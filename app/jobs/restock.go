package jobs

import (
	"github.com/shashiranjanraj/charvi/app/services"
	"github.com/shashiranjanraj/charvi/pkg/logger"
)

// Restock tops up every low-stock product and logs the outcome.
func Restock(products *services.ProductService) {
	result, err := products.UpdateLowStock()
	if err != nil {
		logger.Error("restock: update failed", "error", err)
		return
	}

	logger.Info("restock: " + result.Message)
	for _, line := range result.UpdatedProducts {
		logger.Info("restock: " + line)
	}
}
