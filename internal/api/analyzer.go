package api

import (
	"context"
	"encoding/base64"
)

// AnalyzeIngredients scores an ingredient list against each skin type.
func (c *Client) AnalyzeIngredients(ctx context.Context, ingredients string) (*IngredientAnalysis, error) {
	body := map[string]string{"ingredients": ingredients}
	var out IngredientAnalysis
	if err := c.post(ctx, "/api/analyzer/ingredients", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AnalyzeImage sends a product label photo for ingredient extraction and
// scoring. The image goes over the wire as a base64 data URL, matching
// what the browser dropzone produces.
func (c *Client) AnalyzeImage(ctx context.Context, image []byte, mimeType string) (*ImageAnalysis, error) {
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
	body := map[string]string{"image": dataURL}
	var out ImageAnalysis
	if err := c.post(ctx, "/api/analyzer/analyze", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
