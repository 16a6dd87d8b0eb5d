package startup

import (
	"MerlinsForkAPI/internal/api/router"
	"MerlinsForkAPI/internal/app"
)

// StartServer builds the router and starts the HTTP server in the background.
// The returned channel receives the server's exit error.
func StartServer(application *app.Application) (*router.Builder, <-chan error, error) {
	builder, err := router.NewBuilder(application.GetConfig()).
		WithAllRoutes().
		Build()
	if err != nil {
		return nil, nil, err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- builder.Start()
	}()

	return builder, serverErr, nil
}
