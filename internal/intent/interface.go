package intent

import (
	"context"

	"intent-gateway/pkg/salesforce"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Dispatch classifies the query and runs the matching handler. The output
	// is populated as far as processing got; err classifies the failure.
	Dispatch(ctx context.Context, input DispatchInput) (DispatchOutput, error)
}

// Classifier sends a prompt to the language model and returns its raw text.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// Session is the authenticated downstream handle shared by all requests.
type Session interface {
	Query(ctx context.Context, soql string) (*salesforce.QueryResult, error)
}
