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

// PostController handles HTTP requests for posts.
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController.
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index handles GET /api/posts. Public; only active posts come back.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repositories.PostFilter{
		Title:         query.Get("title"),
		AuthorName:    query.Get("author_name"),
		PublishedDate: query.Get("published_date"),
		Search:        query.Get("search"),
		Ordering:      query.Get("ordering"),
	}
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", 10)

	posts, err := pc.postService.ListPosts(filter, page, perPage)
	if err != nil {
		sendError(w, err)
		return
	}

	items := make([]models.PostListItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, models.NewPostListItem(post))
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": items,
		"page":  page,
	})
}

// Show handles GET /api/posts/{id}. Public; inactive posts are not found.
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	post, comments, err := pc.postService.GetPost(id)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, models.NewPostDetail(post, comments))
}

// Create handles POST /api/posts/create.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.PostCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	post, err := pc.postService.CreatePost(middleware.PrincipalFrom(r), input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles PUT /api/posts/{id}/edit.
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	var input services.PostEditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	post, err := pc.postService.EditPost(middleware.PrincipalFrom(r), id, input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/posts/{id}/delete. Soft delete.
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	if err := pc.postService.DeletePost(middleware.PrincipalFrom(r), id); err != nil {
		sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
