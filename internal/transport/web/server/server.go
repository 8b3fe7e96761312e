package server

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/crypto/acme/autocert"

	"github.com/wanderjot/journal-backend/internal/domain"
)

// Server hosts the journal API. With TLS enabled it obtains certificates
// via Let's Encrypt for the configured hostname.
type Server struct {
	TLSDisabled      bool
	TLSDisabledPort  int
	AutocertHostname string
	Router           http.Handler
}

func (s *Server) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	if s.TLSDisabled {
		logger.InfoContext(ctx, "serving plain HTTP", "port", s.TLSDisabledPort)
		return http.ListenAndServe(fmt.Sprintf(":%d", s.TLSDisabledPort), s.Router)
	}

	logger.InfoContext(ctx, "serving HTTPS via autocert", "hostname", s.AutocertHostname)
	return http.Serve(autocert.NewListener(s.AutocertHostname), s.Router)
}
