package repository

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/model"
)

// Fields the list endpoint may sort on.
var sortableTaskFields = map[string]string{
	"title":     "title",
	"status":    "status",
	"dueDate":   "dueDate",
	"createdAt": "createdAt",
	"updatedAt": "updatedAt",
}

// taskFilter builds the list query filter. Every query is scoped to the
// owner; an out-of-enum status is ignored rather than rejected, and an
// unparsable dueDate drops the date filter.
func taskFilter(userID primitive.ObjectID, q model.TaskListQuery) bson.M {
	filter := bson.M{"user": userID}

	if model.ValidStatus(q.Status) {
		filter["status"] = q.Status
	}

	if q.DueDate != "" {
		if start, end, ok := dueDateWindow(q.DueDate); ok {
			filter["dueDate"] = bson.M{"$gte": start, "$lte": end}
		}
	}

	return filter
}

// dueDateWindow converts an ISO date string into the UTC calendar-day
// window [00:00:00.000, 23:59:59.999] built from its year/month/day.
func dueDateWindow(value string) (time.Time, time.Time, bool) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, value)
		if err != nil {
			return time.Time{}, time.Time{}, false
		}
	}

	y, m, d := parsed.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := time.Date(y, m, d, 23, 59, 59, 999000000, time.UTC)
	return start, end, true
}

// taskSort parses "field:asc|field:desc" against the allow-list and falls
// back to createdAt descending when absent or malformed.
func taskSort(sortBy string) bson.D {
	defaultSort := bson.D{{Key: "createdAt", Value: -1}}

	if sortBy == "" {
		return defaultSort
	}

	parts := strings.Split(sortBy, ":")
	if len(parts) != 2 {
		return defaultSort
	}

	field, ok := sortableTaskFields[parts[0]]
	if !ok {
		return defaultSort
	}

	switch parts[1] {
	case "asc":
		return bson.D{{Key: field, Value: 1}}
	case "desc":
		return bson.D{{Key: field, Value: -1}}
	default:
		return defaultSort
	}
}
