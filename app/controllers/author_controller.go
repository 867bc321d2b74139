package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/apperrors"
	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/repositories"
	"inkwell/app/services"
)

// AuthorController handles HTTP requests for author profiles.
type AuthorController struct {
	authorService *services.AuthorService
}

// NewAuthorController creates a new AuthorController.
func NewAuthorController(authorService *services.AuthorService) *AuthorController {
	return &AuthorController{authorService: authorService}
}

// Index handles GET /api/authors.
func (ac *AuthorController) Index(w http.ResponseWriter, r *http.Request) {
	filter := repositories.AuthorFilter{
		Search:   r.URL.Query().Get("search"),
		Ordering: r.URL.Query().Get("ordering"),
	}

	authors, err := ac.authorService.ListAuthors(middleware.PrincipalFrom(r), filter)
	if err != nil {
		sendError(w, err)
		return
	}

	views := make([]models.AuthorView, 0, len(authors))
	for _, author := range authors {
		views = append(views, models.NewAuthorView(author))
	}
	sendJSON(w, http.StatusOK, views)
}

// Show handles GET /api/authors/{id}.
func (ac *AuthorController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	author, err := ac.authorService.GetAuthor(middleware.PrincipalFrom(r), id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, models.NewAuthorView(author))
}

// Create handles POST /api/authors/create.
func (ac *AuthorController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	author, err := ac.authorService.CreateAuthor(middleware.PrincipalFrom(r), input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, models.NewAuthorView(author))
}

// Edit handles PUT /api/authors/{id}/edit.
func (ac *AuthorController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	var input services.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	author, err := ac.authorService.UpdateAuthor(middleware.PrincipalFrom(r), id, input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, models.NewAuthorView(author))
}

// Delete handles DELETE /api/authors/{id}/delete.
func (ac *AuthorController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	if err := ac.authorService.DeleteAuthor(middleware.PrincipalFrom(r), id); err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
