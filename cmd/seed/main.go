package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/reviewmarket/review_dashboard/internal/config"
	"github.com/reviewmarket/review_dashboard/internal/hash"
	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/repo"
)

// Seeds a development database with a few users, products and reviews so
// the dashboard has something to show. Safe to re-run: duplicate user
// names just fail their insert and are skipped.
func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	r := repo.NewGormRepo(db)
	ctx := context.Background()

	users := []struct {
		name, mail, password string
	}{
		{"alice", "alice@example.com", "alice-password"},
		{"bob", "bob@example.com", "bob-password"},
		{"carol", "carol@example.com", "carol-password"},
	}

	var userIDs []string
	for _, u := range users {
		pwHash, err := hash.HashPassword(u.password)
		if err != nil {
			log.Fatalf("hash error: %v", err)
		}
		user := models.User{
			UUID:       uuid.NewString(),
			UserName:   u.name,
			Mail:       u.mail,
			Password:   pwHash,
			SignUpDate: time.Now(),
		}
		if _, err := r.CreateUser(ctx, &user); err != nil {
			log.Printf("skip user %s: %v", u.name, err)
			continue
		}
		userIDs = append(userIDs, user.UUID)
	}

	discount := 20
	products := []models.Product{
		{ID: uuid.NewString(), Name: "Walnut Desk Organizer", Image: "https://img.example.com/organizer.png", Price: 24.99},
		{ID: uuid.NewString(), Name: "Ceramic Pour-Over Set", Image: "https://img.example.com/pourover.png", Price: 42.50, IsSpecial: true, Discount: &discount},
		{ID: uuid.NewString(), Name: "Linen Tote Bag", Image: "https://img.example.com/tote.png", Price: 15.00},
	}
	for i := range products {
		if _, err := r.CreateProduct(ctx, &products[i]); err != nil {
			log.Printf("skip product %s: %v", products[i].Name, err)
		}
	}

	if len(userIDs) == 0 {
		log.Println("no users created, skipping reviews")
		return
	}

	reviews := []models.Review{
		{ProductID: products[0].ID, UserID: userIDs[0], Content: "Keeps my desk tidy, great finish.", Rating: 5, SubmissionDate: time.Now()},
		{ProductID: products[0].ID, UserID: userIDs[1%len(userIDs)], Content: "Smaller than expected.", Rating: 3, SubmissionDate: time.Now()},
		{ProductID: products[1].ID, UserID: userIDs[0], Content: "Makes a perfect cup every morning.", Rating: 5, SubmissionDate: time.Now()},
		{ProductID: products[2].ID, UserID: userIDs[2%len(userIDs)], Content: "Strap ripped after a week.", Rating: 1, SubmissionDate: time.Now()},
	}
	for i := range reviews {
		if _, err := r.CreateReview(ctx, &reviews[i]); err != nil {
			log.Printf("skip review: %v", err)
		}
	}

	log.Printf("seeded %d users, %d products, %d reviews", len(userIDs), len(products), len(reviews))
}
