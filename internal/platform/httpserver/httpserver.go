package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with sane defaults for this project. The write
// timeout has to outlast a full resolution chain: one primary call plus two
// lists of secondary calls, so it is derived from the caller's worst case.
func New(addr string, handler http.Handler, worstCaseLookup time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      worstCaseLookup + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
