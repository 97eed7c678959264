package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/colefield/ripple/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	posts *service.PostService,
	images *service.ImageService,
	limiter *service.TokenBucket,
) {
	authHandler := NewAuthHandler(auth)
	postHandler := NewPostHandler(posts)
	imageHandler := NewImageHandler(images)

	// Credential endpoints are rate limited per client IP.
	mux.Handle("POST /register", RateLimit(limiter, http.HandlerFunc(authHandler.HandleRegister)))
	mux.Handle("POST /login", RateLimit(limiter, http.HandlerFunc(authHandler.HandleLogin)))
	mux.Handle("GET /auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.HandleFunc("GET /feed", postHandler.HandleFeed)
	mux.Handle("POST /post", RequireAuth(auth, http.HandlerFunc(postHandler.HandleCreate)))
	mux.HandleFunc("GET /post/{id}", postHandler.HandleGet)
	mux.HandleFunc("GET /user/{id}/posts", postHandler.HandleListByUser)
	mux.Handle("DELETE /post/{id}", RequireAuth(auth, http.HandlerFunc(postHandler.HandleDelete)))
	mux.Handle("POST /post/{id}/like", RequireAuth(auth, http.HandlerFunc(postHandler.HandleLike)))
	mux.HandleFunc("GET /post/{id}/comments", postHandler.HandleListComments)
	mux.Handle("POST /post/{id}/comment", RequireAuth(auth, http.HandlerFunc(postHandler.HandleAddComment)))

	mux.Handle("POST /images", RequireAuth(auth, http.HandlerFunc(imageHandler.HandleUpload)))
	mux.HandleFunc("GET /images/{name}", imageHandler.HandleServe)

	mux.HandleFunc("GET /healthz", HandleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())
}
