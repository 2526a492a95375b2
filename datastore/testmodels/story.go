package testmodels

import "github.com/go-openapi/strfmt"

// Story is one user story row, keyed by owner and story id.
type Story struct {

	// Timestamp when the story was created.
	// Required: true
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt" dynamodbav:"created_at"`

	// Owner of the story.
	// Required: true
	Owner string `json:"Owner" dynamodbav:"owner"`

	// Unique identifier of the story within its owner.
	// Required: true
	StoryID string `json:"StoryId" dynamodbav:"story_id"`

	// Title of the story.
	// Required: true
	Title string `json:"Title" dynamodbav:"title"`

	// Free-form body text.
	Body string `json:"Body,omitempty" dynamodbav:"body,omitempty"`

	// Timestamp when the story was last updated.
	// Format: date-time
	UpdatedAt *strfmt.DateTime `json:"UpdatedAt,omitempty" dynamodbav:"updated_at,omitempty"`
}
