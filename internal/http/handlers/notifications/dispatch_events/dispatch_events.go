package dispatchevents

import (
	e "medremind/internal/core/domain/errors"
	"medremind/internal/core/domain/logging"
	dispatchevents "medremind/internal/implementations/dispatch_events"
	"net/http"

	"github.com/r3labs/sse/v2"
)

// Handler streams dispatch outcomes over SSE. Clients subscribe to
// the shared dispatches stream; there is no per-client replay.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", dispatchevents.Stream)
	r.URL.RawQuery = query.Encode()

	h.log.Info(r.Context(), "Subscribed to dispatch events.", logging.Entry("remoteAddr", r.RemoteAddr))
	h.sseServer.ServeHTTP(rw, r)
}
