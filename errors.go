package restroute

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

func newConfigError(message string, metadata map[string]any) error {
	return goerrors.New(message, goerrors.HTTPStatusToCategory(http.StatusBadRequest)).
		WithCode(http.StatusBadRequest).
		WithTextCode("INVALID_ROUTE_CONFIG").
		WithMetadata(metadata)
}

func newDuplicateRouteError(name string) error {
	return goerrors.New(fmt.Sprintf("duplicate route name: %s", name), goerrors.CategoryConflict).
		WithCode(http.StatusConflict).
		WithTextCode("DUPLICATE_ROUTE").
		WithMetadata(map[string]any{"route": name})
}
