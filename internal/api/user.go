package api

import (
	"context"
	"fmt"
)

// Profile fetches the extended profile of the authenticated user.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := c.get(ctx, "/api/user/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreferences replaces the stored skin profile.
func (c *Client) UpdatePreferences(ctx context.Context, prefs Preferences) (*Preferences, error) {
	var out Preferences
	if err := c.put(ctx, "/api/user/preferences", prefs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Routines lists the user's saved routines.
func (c *Client) Routines(ctx context.Context) ([]SavedRoutine, error) {
	var out struct {
		Routines []SavedRoutine `json:"routines"`
	}
	if err := c.get(ctx, "/api/user/routines", &out); err != nil {
		return nil, err
	}
	return out.Routines, nil
}

// SaveRoutine stores a routine under the user's account.
func (c *Client) SaveRoutine(ctx context.Context, routine SavedRoutine) (*SavedRoutine, error) {
	var out SavedRoutine
	if err := c.post(ctx, "/api/user/routines", routine, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History returns up to limit recently viewed products.
func (c *Client) History(ctx context.Context, limit int) ([]HistoryEntry, error) {
	var out struct {
		ProductHistory []HistoryEntry `json:"product_history"`
	}
	path := fmt.Sprintf("/api/user/history?limit=%d", limit)
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.ProductHistory, nil
}

// SubmitFeedback records product feedback for the user.
func (c *Client) SubmitFeedback(ctx context.Context, fb Feedback) error {
	return c.post(ctx, "/api/user/feedback", fb, nil)
}
