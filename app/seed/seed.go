// Package seed fills the database with demo users, authors, posts and
// comments.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"inkwell/app/models"
)

const (
	postCount    = 100
	demoPassword = "pass1234"
)

var sampleTitles = []string{
	"Notes from the road",
	"On writing less",
	"A field guide to procrastination",
	"What the garden taught me",
	"Letters to nobody",
	"The slow art of finishing",
	"Maps without territories",
	"Coffee, deadlines and other rituals",
}

var sampleParagraphs = []string{
	"There is a particular kind of silence that settles over a draft nobody has read yet.",
	"I keep coming back to the same three sentences, rearranging them like furniture.",
	"The trick, as far as I can tell, is to stop before you are empty rather than after.",
	"Every project starts as a list and ends as an apology to that list.",
	"Some ideas only survive if you refuse to explain them too early.",
}

var sampleComments = []string{
	"This landed at exactly the right time for me, thank you.",
	"Not sure I agree with the middle part, but the ending is spot on.",
	"Bookmarking this to re-read next month.",
	"Could you expand on the second paragraph sometime?",
	"Short and true.",
}

// Run populates the store with two demo users, one author profile each, a
// year of posts and a scattering of comments, some anonymous.
func Run(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user1, err := getOrCreateUser(db, "user1", "user1@example.com", string(hash))
	if err != nil {
		return err
	}
	user2, err := getOrCreateUser(db, "user2", "user2@example.com", string(hash))
	if err != nil {
		return err
	}

	author1, err := getOrCreateAuthor(db, user1, "Author One", "author1@example.com")
	if err != nil {
		return err
	}
	author2, err := getOrCreateAuthor(db, user2, "Author Two", "author2@example.com")
	if err != nil {
		return err
	}
	authors := []*models.Author{author1, author2}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	statuses := []string{models.StatusDraft, models.StatusPublished}
	commenters := []*uint{&user1.ID, &user2.ID, nil} // nil = anonymous

	for i := 0; i < postCount; i++ {
		author := authors[rng.Intn(len(authors))]
		post := models.Post{
			Title:         fmt.Sprintf("%s #%d", sampleTitles[rng.Intn(len(sampleTitles))], i+1),
			Content:       sampleParagraphs[rng.Intn(len(sampleParagraphs))],
			PublishedDate: time.Now().Add(-time.Duration(rng.Intn(365*24)) * time.Hour),
			AuthorID:      author.ID,
			Status:        statuses[rng.Intn(len(statuses))],
			Active:        true,
		}
		if err := db.Create(&post).Error; err != nil {
			return err
		}

		for c := 0; c < 1+rng.Intn(5); c++ {
			comment := models.Comment{
				PostID:  post.ID,
				Content: sampleComments[rng.Intn(len(sampleComments))],
				UserID:  commenters[rng.Intn(len(commenters))],
				Created: post.PublishedDate.Add(time.Duration(rng.Intn(72)) * time.Hour),
			}
			if err := db.Create(&comment).Error; err != nil {
				return err
			}
		}
	}

	slog.Info("database seeded", "posts", postCount, "users", 2)
	return nil
}

func getOrCreateUser(db *gorm.DB, username, email, passwordHash string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	user = models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func getOrCreateAuthor(db *gorm.DB, user *models.User, name, email string) (*models.Author, error) {
	var author models.Author
	err := db.Where("user_id = ?", user.ID).First(&author).Error
	if err == nil {
		return &author, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	author = models.Author{Name: name, Email: email, UserID: &user.ID}
	if err := db.Create(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}
