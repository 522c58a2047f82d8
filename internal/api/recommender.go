package api

import "context"

// RecommenderMetadata fetches the option lists for the recommendation form.
func (c *Client) RecommenderMetadata(ctx context.Context) (*RecommenderMetadata, error) {
	var out RecommenderMetadata
	if err := c.get(ctx, "/api/recommender/metadata", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendations returns products matching the filter criteria.
func (c *Client) Recommendations(ctx context.Context, req RecommendationRequest) ([]Product, error) {
	var out struct {
		Recommendations []Product `json:"recommendations"`
	}
	if err := c.post(ctx, "/api/recommender/recommendations", req, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}
