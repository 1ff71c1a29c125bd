package graph

import (
	"time"

	"github.com/graphql-go/graphql"

	"github.com/reviewmarket/review_dashboard/internal/models"
	"github.com/reviewmarket/review_dashboard/internal/repo"
)

// reviewOut is the wire shape of a Review. It is flat on purpose:
// the graphql default resolver matches json tags on direct struct
// fields only, so embedded model fields would not resolve.
type reviewOut struct {
	ReviewID       int       `json:"review_id"`
	ProductID      string    `json:"product_id"`
	UserID         string    `json:"user_id"`
	Content        string    `json:"content"`
	SubmissionDate time.Time `json:"submission_date"`
	Rating         int       `json:"rating"`
	IsDeleted      bool      `json:"isDeleted"`
	IsFlagged      bool      `json:"isFlagged"`
	ProductName    *string   `json:"product_name"`
	UserName       *string   `json:"user_name"`
}

func reviewFromModel(r models.Review) reviewOut {
	return reviewOut{
		ReviewID:       r.ReviewID,
		ProductID:      r.ProductID,
		UserID:         r.UserID,
		Content:        r.Content,
		SubmissionDate: r.SubmissionDate,
		Rating:         r.Rating,
		IsDeleted:      r.IsDeleted,
		IsFlagged:      r.IsFlagged,
	}
}

func reviewFromRow(r repo.ReviewWithNames) reviewOut {
	out := reviewFromModel(r.Review)
	out.ProductName = r.ProductName
	out.UserName = r.UserName
	return out
}

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"uuid":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user_name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"mail":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"sign_up_date": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"isBlocked":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"isDeleted":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"image":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"price":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
		"isSpecial": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"discount":  &graphql.Field{Type: graphql.Int},
	},
})

var reviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Review",
	Fields: graphql.Fields{
		"review_id":       &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"product_id":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user_id":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"submission_date": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		"rating":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"isDeleted":       &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"isFlagged":       &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		"product_name":    &graphql.Field{Type: graphql.String},
		"user_name":       &graphql.Field{Type: graphql.String},
	},
})

var reviewCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ReviewCount",
	Fields: graphql.Fields{
		"productId":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"product_name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"reviewCount":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var averageRatingType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AverageRating",
	Fields: graphql.Fields{
		"productId":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"product_name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"averageRating": &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
	},
})

var userReviewCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "UserReviewCount",
	Fields: graphql.Fields{
		"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"userName":    &graphql.Field{Type: graphql.String},
		"reviewCount": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})
