package repository

import (
	"testing"

	"greenfood-api/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildProductQuery(t *testing.T) {
	t.Run("empty filter matches everything", func(t *testing.T) {
		query := buildProductQuery(model.ProductFilter{})
		if len(query) != 0 {
			t.Fatalf("expected empty query, got %v", query)
		}
	})

	t.Run("category is an exact match", func(t *testing.T) {
		query := buildProductQuery(model.ProductFilter{Category: "drinks"})
		if got := query["category"]; got != "drinks" {
			t.Fatalf("expected exact category match, got %v", got)
		}
		if _, ok := query["title"]; ok {
			t.Fatal("title filter should be absent")
		}
	})

	t.Run("text query is a case-insensitive regex", func(t *testing.T) {
		query := buildProductQuery(model.ProductFilter{Query: "tea"})
		title, ok := query["title"].(bson.M)
		if !ok {
			t.Fatalf("expected title regex clause, got %v", query["title"])
		}
		regex, ok := title["$regex"].(primitive.Regex)
		if !ok {
			t.Fatalf("expected primitive.Regex, got %T", title["$regex"])
		}
		if regex.Pattern != "tea" || regex.Options != "i" {
			t.Fatalf("unexpected regex %+v", regex)
		}
	})

	t.Run("regex metacharacters are escaped", func(t *testing.T) {
		query := buildProductQuery(model.ProductFilter{Query: "a+b"})
		regex := query["title"].(bson.M)["$regex"].(primitive.Regex)
		if regex.Pattern != `a\+b` {
			t.Fatalf("expected escaped pattern, got %q", regex.Pattern)
		}
	})

	t.Run("both filters combine as AND", func(t *testing.T) {
		query := buildProductQuery(model.ProductFilter{Category: "drinks", Query: "tea"})
		if len(query) != 2 {
			t.Fatalf("expected two clauses, got %v", query)
		}
	})
}
