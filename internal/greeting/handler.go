package greeting

import (
	"io"
	"net/http"
)

// Message is the body of GET /.
const Message = "Hello, World!"

// Root handles GET /.
//
//	@Summary	Greeting
//	@Tags		greeting
//	@Produce	plain
//	@Success	200	{string}	string	"Hello, World!"
//	@Router		/ [get]
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, Message)
}
