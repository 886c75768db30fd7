package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status values. Declared statically and shared by validation,
// storage filters and the board columns.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var TaskStatuses = []string{StatusPending, StatusInProgress, StatusCompleted}

func ValidStatus(s string) bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"user" json:"user"`
	ProjectID   primitive.ObjectID `bson:"project" json:"project"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Status      string             `bson:"status" json:"status"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateTaskInput is the task creation request body.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ProjectID   string `json:"projectId"`
	DueDate     string `json:"dueDate"`
}

// UpdateTaskInput carries optional fields for partial updates. Title,
// Status and DueDate only overwrite when sent non-empty; Description
// overwrites whenever the field is present, including an empty string.
type UpdateTaskInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

// TaskListQuery is the parsed form of the task list endpoint's query
// string, after defaults and caps are applied.
type TaskListQuery struct {
	Status  string
	DueDate string
	SortBy  string
	Page    int
	Limit   int
}

// TaskPage is the paginated task list response shape.
type TaskPage struct {
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalTasks  int64  `json:"totalTasks"`
	CountOnPage int    `json:"countOnPage"`
	Tasks       []Task `json:"tasks"`
}
