package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"inkwell/app/repositories/mock"
	"inkwell/app/services"
)

type testEnv struct {
	router *mux.Router

	authorRepo  *mock.AuthorRepository
	postRepo    *mock.PostRepository
	commentRepo *mock.CommentRepository
	userRepo    *mock.UserRepository

	auth *services.AuthService
}

// setupTestEnv wires the full route table over in-memory repositories.
func setupTestEnv(t *testing.T, allowMultipleProfiles bool) *testEnv {
	t.Helper()

	authorRepo := mock.NewAuthorRepository()
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	userRepo := mock.NewUserRepository()
	tokenRepo := mock.NewTokenRepository()
	authorRepo.Posts = postRepo
	authorRepo.Users = userRepo
	postRepo.Comments = commentRepo
	commentRepo.Users = userRepo

	auth := services.NewAuthService(userRepo, tokenRepo)
	router := SetupRoutes(Deps{
		Auth:     auth,
		Authors:  services.NewAuthorService(authorRepo, allowMultipleProfiles),
		Posts:    services.NewPostService(postRepo, authorRepo, commentRepo),
		Comments: services.NewCommentService(commentRepo, postRepo),
	})

	return &testEnv{
		router:      router,
		authorRepo:  authorRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		auth:        auth,
	}
}

// do performs a request against the test router. An empty token means an
// anonymous call.
func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signUp registers a user through the API and returns a signed-in token.
func (env *testEnv) signUp(t *testing.T, username string, staff bool) string {
	t.Helper()

	w := env.do(t, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "pass1234",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	if staff {
		user, err := env.userRepo.GetByUsername(username)
		require.NoError(t, err)
		user.IsStaff = true
	}

	w = env.do(t, "POST", "/api/auth/sign_in", "", map[string]string{
		"username": username,
		"password": "pass1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Token)
	return response.Token
}

// createAuthor creates an author profile through the API.
func (env *testEnv) createAuthor(t *testing.T, token, name, email string) uint {
	t.Helper()

	w := env.do(t, "POST", "/api/authors/create", token, map[string]string{
		"name":  name,
		"email": email,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var author struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &author))
	return author.ID
}

// createPost creates a post through the API under the given author.
func (env *testEnv) createPost(t *testing.T, token string, authorID uint, title string) uint {
	t.Helper()

	w := env.do(t, "POST", "/api/posts/create", token, map[string]interface{}{
		"title":   title,
		"content": "content of " + title,
		"author":  authorID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var post struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &post))
	return post.ID
}

type postListResponse struct {
	Page  int `json:"page"`
	Posts []struct {
		ID         uint   `json:"id"`
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
	} `json:"posts"`
}

func (env *testEnv) listPosts(t *testing.T, query string) postListResponse {
	t.Helper()

	w := env.do(t, "GET", "/api/posts"+query, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response postListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}
