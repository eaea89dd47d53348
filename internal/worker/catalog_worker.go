package worker

import (
	"github.com/spec-kit/clothes-service/internal/service"
)

// StartCatalogListener registers catalog event handlers.
func StartCatalogListener(listener *service.CatalogListener) {
	if listener == nil {
		return
	}
	listener.RegisterHandlers()
}
