package repository

import (
	"regexp"
	"strings"

	"coursehub/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogFilter translates listing parameters into a course filter.
// An unparsable category id yields a filter that matches nothing.
func CatalogFilter(q models.CatalogQuery) bson.M {
	filter := bson.M{}

	switch {
	case q.PublishedOnly:
		filter["status"] = models.CoursePublished
	case q.Status != "":
		filter["status"] = q.Status
	}

	if !q.InstructorID.IsZero() {
		filter["instructorId"] = q.InstructorID
	}

	if category := strings.TrimSpace(q.Category); category != "" && !strings.EqualFold(category, "all") {
		id, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			id = primitive.NilObjectID
		}
		filter["categoryId"] = id
	}

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"courseName": pattern},
			bson.M{"courseDescription": pattern},
		}
	}

	price := bson.M{}
	if q.MinPrice != nil {
		price["$gte"] = *q.MinPrice
	}
	if q.MaxPrice != nil {
		price["$lte"] = *q.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter
}

// CatalogSort returns the sort document for a sort key, always ending in
// _id so pages stay stable when the primary key ties.
func CatalogSort(sort string) bson.D {
	switch sort {
	case models.SortOldest:
		return bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
	case models.SortPriceLow:
		return bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}
	case models.SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}
