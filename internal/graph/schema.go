package graph

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/reviewmarket/review_dashboard/internal/query"
	"github.com/reviewmarket/review_dashboard/internal/service"
)

type Resolver struct {
	Svc *service.AdminService
}

// NewSchema wires the full admin API: every query and mutation resolves
// through the service layer, and service errors surface to the client
// as plain GraphQL error messages.
func NewSchema(svc *service.AdminService) (graphql.Schema, error) {
	r := &Resolver{Svc: svc}
	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(),
		Mutation: r.mutationType(),
	})
}

func boolArg(p graphql.ResolveParams, name string) *bool {
	if v, ok := p.Args[name].(bool); ok {
		return &v
	}
	return nil
}

func intArg(p graphql.ResolveParams, name string) *int {
	if v, ok := p.Args[name].(int); ok {
		return &v
	}
	return nil
}

func floatArg(p graphql.ResolveParams, name string) *float64 {
	if v, ok := p.Args[name].(float64); ok {
		return &v
	}
	return nil
}

func stringArg(p graphql.ResolveParams, name string) *string {
	if v, ok := p.Args[name].(string); ok {
		return &v
	}
	return nil
}

func sortArg(p graphql.ResolveParams) (*query.Sort, error) {
	v, ok := p.Args["orderBy"].(string)
	if !ok {
		return nil, nil
	}
	dir, ok := query.ParseDirection(v)
	if !ok {
		return nil, errors.New(`orderBy must be "asc" or "desc"`)
	}
	return &query.Sort{Direction: dir}, nil
}

func (r *Resolver) queryType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAllUsers": &graphql.Field{
				Type: graphql.NewList(userType),
				Args: graphql.FieldConfigArgument{
					"orderBy":   &graphql.ArgumentConfig{Type: graphql.String},
					"isBlocked": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"isDeleted": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					sort, err := sortArg(p)
					if err != nil {
						return nil, err
					}
					filter := query.UserFilter{
						IsBlocked: boolArg(p, "isBlocked"),
						IsDeleted: boolArg(p, "isDeleted"),
					}
					return r.Svc.GetAllUsers(p.Context, filter, sort)
				},
			},
			"getAllReviews": &graphql.Field{
				Type: graphql.NewList(reviewType),
				Args: graphql.FieldConfigArgument{
					"orderBy":   &graphql.ArgumentConfig{Type: graphql.String},
					"isFlagged": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"rating":    &graphql.ArgumentConfig{Type: graphql.Int},
					"isDeleted": &graphql.ArgumentConfig{Type: graphql.Boolean},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					sort, err := sortArg(p)
					if err != nil {
						return nil, err
					}
					filter := query.ReviewFilter{
						IsFlagged: boolArg(p, "isFlagged"),
						IsDeleted: boolArg(p, "isDeleted"),
						Rating:    intArg(p, "rating"),
					}
					rows, err := r.Svc.GetAllReviews(p.Context, filter, sort)
					if err != nil {
						return nil, err
					}
					out := make([]reviewOut, len(rows))
					for i, row := range rows {
						out[i] = reviewFromRow(row)
					}
					return out, nil
				},
			},
			"getAllProducts": &graphql.Field{
				Type: graphql.NewList(productType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.GetAllProducts(p.Context)
				},
			},
			"getProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.GetProduct(p.Context, p.Args["id"].(string))
				},
			},
			"getReviewCounts": &graphql.Field{
				Type: graphql.NewList(reviewCountType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.GetReviewCounts(p.Context)
				},
			},
			"getAverageRatings": &graphql.Field{
				Type: graphql.NewList(averageRatingType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.GetAverageRatings(p.Context)
				},
			},
			"getUserReviewCounts": &graphql.Field{
				Type: graphql.NewList(userReviewCountType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.GetUserReviewCounts(p.Context)
				},
			},
			"searchReviews": &graphql.Field{
				Type: graphql.NewList(reviewType),
				Args: graphql.FieldConfigArgument{
					"query": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					reviews, err := r.Svc.SearchReviews(p.Context, p.Args["query"].(string))
					if err != nil {
						return nil, err
					}
					out := make([]reviewOut, len(reviews))
					for i, rev := range reviews {
						out[i] = reviewFromModel(rev)
					}
					return out, nil
				},
			},
		},
	})
}

func (r *Resolver) mutationType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"name":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"image": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"price": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.CreateProduct(
						p.Context,
						p.Args["name"].(string),
						p.Args["image"].(string),
						p.Args["price"].(float64),
					)
				},
			},
			"updateProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":      &graphql.ArgumentConfig{Type: graphql.String},
					"image":     &graphql.ArgumentConfig{Type: graphql.String},
					"price":     &graphql.ArgumentConfig{Type: graphql.Float},
					"isSpecial": &graphql.ArgumentConfig{Type: graphql.Boolean},
					"discount":  &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					in := service.UpdateProductInput{
						Name:      stringArg(p, "name"),
						Image:     stringArg(p, "image"),
						Price:     floatArg(p, "price"),
						IsSpecial: boolArg(p, "isSpecial"),
						Discount:  intArg(p, "discount"),
					}
					return r.Svc.UpdateProduct(p.Context, p.Args["id"].(string), in)
				},
			},
			"deleteProduct": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.DeleteProduct(p.Context, p.Args["id"].(string))
				},
			},
			"updateReviewContent": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"content":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					review, err := r.Svc.UpdateReviewContent(p.Context, p.Args["review_id"].(int), p.Args["content"].(string))
					if err != nil {
						return nil, err
					}
					return reviewFromModel(*review), nil
				},
			},
			"deleteReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					review, err := r.Svc.DeleteReview(p.Context, p.Args["review_id"].(int))
					if err != nil {
						return nil, err
					}
					return reviewFromModel(*review), nil
				},
			},
			"flagReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					review, err := r.Svc.FlagReview(p.Context, p.Args["review_id"].(int))
					if err != nil {
						return nil, err
					}
					return reviewFromModel(*review), nil
				},
			},
			"unflagReview": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"review_id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					review, err := r.Svc.UnflagReview(p.Context, p.Args["review_id"].(int))
					if err != nil {
						return nil, err
					}
					return reviewFromModel(*review), nil
				},
			},
			"blockUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"uuid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.BlockUser(p.Context, p.Args["uuid"].(string))
				},
			},
			"unblockUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"uuid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.UnblockUser(p.Context, p.Args["uuid"].(string))
				},
			},
			"deleteUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"uuid": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.Svc.DeleteUser(p.Context, p.Args["uuid"].(string))
				},
			},
		},
	})
}
