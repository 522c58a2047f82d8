package api

import (
	"context"
	"net/http"
)

// RoutineMetadata fetches the option lists for the routine form.
func (c *Client) RoutineMetadata(ctx context.Context) (*RoutineMetadata, error) {
	var out RoutineMetadata
	if err := c.get(ctx, "/api/routine/metadata", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RoutineRecommendation builds a personalized routine from user attributes.
func (c *Client) RoutineRecommendation(ctx context.Context, req RoutineRequest) (*Routine, error) {
	var out struct {
		Success bool     `json:"success"`
		Routine *Routine `json:"routine"`
		Error   string   `json:"error"`
	}
	if err := c.post(ctx, "/api/routine/recommendations", req, &out); err != nil {
		return nil, err
	}
	if !out.Success || out.Routine == nil {
		msg := out.Error
		if msg == "" {
			msg = "routine generation failed"
		}
		// In-band failure: the endpoint reports errors with a 200 envelope.
		return nil, &Error{Status: http.StatusOK, Message: msg}
	}
	return out.Routine, nil
}
