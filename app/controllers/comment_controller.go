package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/apperrors"
	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController.
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Create handles POST /api/comments/create. Anonymous callers welcome.
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CommentCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendError(w, apperrors.Validation("invalid JSON: %v", err))
		return
	}

	comment, err := cc.commentService.CreateComment(middleware.PrincipalFrom(r), input)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, comment)
}

// Index handles GET /api/posts/{id}/comments.
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		sendError(w, err)
		return
	}

	comments, err := cc.commentService.ListPostComments(id)
	if err != nil {
		sendError(w, err)
		return
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, models.NewCommentView(comment))
	}
	sendJSON(w, http.StatusOK, views)
}
