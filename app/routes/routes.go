// Package routes wires controllers into the HTTP route table.
package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"inkwell/app/controllers"
	"inkwell/app/middleware"
	"inkwell/app/services"
)

// Deps carries the services the route table is built from.
type Deps struct {
	Auth     *services.AuthService
	Authors  *services.AuthorService
	Posts    *services.PostService
	Comments *services.CommentService
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Deps) *mux.Router {
	router := mux.NewRouter()

	// Global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Authenticate(deps.Auth))

	authController := controllers.NewAuthController(deps.Auth)
	authorController := controllers.NewAuthorController(deps.Authors)
	postController := controllers.NewPostController(deps.Posts)
	commentController := controllers.NewCommentController(deps.Comments)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "OK")
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Auth endpoints
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authController.Register).Methods("POST")
	auth.HandleFunc("/sign_in", authController.SignIn).Methods("POST")
	auth.Handle("/sign_out", middleware.RequireAuth(http.HandlerFunc(authController.SignOut))).Methods("POST")

	// Author endpoints, all behind authentication
	authors := api.PathPrefix("/authors").Subrouter()
	authors.Use(middleware.RequireAuth)
	authors.HandleFunc("", authorController.Index).Methods("GET")
	authors.HandleFunc("/create", authorController.Create).Methods("POST")
	authors.HandleFunc("/{id:[0-9]+}", authorController.Show).Methods("GET")
	authors.HandleFunc("/{id:[0-9]+}/edit", authorController.Edit).Methods("PUT")
	authors.HandleFunc("/{id:[0-9]+}/delete", authorController.Delete).Methods("DELETE")

	// Post endpoints; reads are public, mutations require authentication
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.Handle("/create", middleware.RequireAuth(http.HandlerFunc(postController.Create))).Methods("POST")
	posts.HandleFunc("/{id:[0-9]+}", postController.Show).Methods("GET")
	posts.Handle("/{id:[0-9]+}/edit", middleware.RequireAuth(http.HandlerFunc(postController.Edit))).Methods("PUT")
	posts.Handle("/{id:[0-9]+}/delete", middleware.RequireAuth(http.HandlerFunc(postController.Delete))).Methods("DELETE")
	posts.HandleFunc("/{id:[0-9]+}/comments", commentController.Index).Methods("GET")

	// Comment creation is open to anonymous callers
	api.HandleFunc("/comments/create", commentController.Create).Methods("POST")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
