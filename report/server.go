package report

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// StartServer serves handler on the given port in the background. It returns
// once the port is bound, or an error if it cannot be. The caller closes the
// server.
func StartServer(port int, handler http.Handler) (*http.Server, error) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}
	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return nil, fmt.Errorf("could not start report listener: %w", err)
	}
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(err)
		}
	}()
	return server, nil
}
