package api

// User is the authenticated identity record.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// Preferences holds the saved skin profile.
type Preferences struct {
	SkinType     string   `json:"skin_type"`
	SkinConcerns []string `json:"skin_concerns"`
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	Token string `json:"token"`
}

// VerifyResponse is returned by token verification.
type VerifyResponse struct {
	Valid bool  `json:"valid"`
	User  *User `json:"user"`
}

// RecommenderMetadata lists the option values for the recommendation form.
type RecommenderMetadata struct {
	SkinTypes         []string `json:"skin_types"`
	Categories        []string `json:"categories"`
	SkinConcerns      []string `json:"skin_concerns"`
	CommonIngredients []string `json:"common_ingredients"`
}

// RecommendationRequest is the filter criteria for product recommendations.
type RecommendationRequest struct {
	SkinType             string   `json:"skin_type"`
	SkinConcerns         []string `json:"skin_concerns"`
	PreferredIngredients []string `json:"preferred_ingredients"`
	Allergies            []string `json:"allergies"`
	PreferredCategories  []string `json:"preferred_categories"`
}

// Product is a single recommended product.
type Product struct {
	ID          int     `json:"id"`
	Label       string  `json:"label"`
	Brand       string  `json:"brand"`
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	Rating      float64 `json:"rating"`
	Price       float64 `json:"price"`
	Ingredients string  `json:"ingredients"`
}

// IngredientAnalysis is the suitability result for an ingredient list.
type IngredientAnalysis struct {
	Success           bool               `json:"success"`
	SuitabilityScores map[string]float64 `json:"suitability_scores"`
	BestFor           string             `json:"best_for"`
	BestScore         float64            `json:"best_score"`
	Error             string             `json:"error,omitempty"`
}

// ImageAnalysis is the result of analyzing a product label photo. The
// backend extracts the ingredient text before scoring it.
type ImageAnalysis struct {
	Success           bool               `json:"success"`
	Ingredients       string             `json:"ingredients"`
	SuitabilityScores map[string]float64 `json:"suitability_scores"`
	BestFor           string             `json:"best_for"`
	BestScore         float64            `json:"best_score"`
	Error             string             `json:"error,omitempty"`
}

// RoutineMetadata lists the option values for the routine form.
type RoutineMetadata struct {
	SkinTypes    []string `json:"skin_types"`
	SkinConcerns []string `json:"skin_concerns"`
	Climates     []string `json:"climates"`
}

// RoutineRequest holds the user attributes a routine is built from.
type RoutineRequest struct {
	SkinType        string   `json:"skin_type"`
	SkinConcerns    []string `json:"skin_concerns"`
	Allergies       []string `json:"allergies"`
	Climate         string   `json:"climate"`
	Age             int      `json:"age"`
	IncludeProducts bool     `json:"include_products"`
}

// RoutineStep is one step of a generated routine.
type RoutineStep struct {
	Step                   string   `json:"step"`
	Frequency              string   `json:"frequency,omitempty"`
	Texture                string   `json:"texture,omitempty"`
	RecommendedIngredients []string `json:"recommended_ingredients"`
	AvoidIngredients       []string `json:"avoid_ingredients,omitempty"`
}

// Routine groups steps by time of day plus weekly treatments.
type Routine struct {
	Morning []RoutineStep `json:"morning"`
	Evening []RoutineStep `json:"evening"`
	Weekly  []RoutineStep `json:"weekly"`
}

// SavedRoutine is a user-stored routine record.
type SavedRoutine struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Routine   Routine `json:"routine"`
	CreatedAt string  `json:"created_at,omitempty"`
}

// HistoryEntry is a previously viewed or recommended product.
type HistoryEntry struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	ViewedAt    string `json:"viewed_at"`
}

// Feedback is a user's rating of a recommended product. Liked and
// Rating are pointers so "no opinion" is distinguishable from zero.
type Feedback struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Category    string `json:"category"`
	Liked       *bool  `json:"liked"`
	Rating      *int   `json:"rating"`
	Review      string `json:"review"`
	Used        bool   `json:"used"`
}
