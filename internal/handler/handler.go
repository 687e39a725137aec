package handler

import "net/http"

// Middleware wraps routes that need an authenticated caller.
type Middleware = func(http.Handler) http.Handler
