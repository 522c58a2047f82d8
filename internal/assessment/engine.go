// Package assessment implements the skin-type quiz classifier.
//
// The engine is a pure function of the recorded answers: no network, no
// persistence. Saving the resulting profile is an explicit separate step
// performed by the caller through the session store.
package assessment

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anirudh-why/SmartSkin/internal/api"
)

// Trait declaration order is load-bearing: the maximum-score selection
// breaks ties in favor of the first-declared trait. Keep these slices,
// never a map, so the tie-break stays deterministic.
var (
	skinTypeTraits = []string{"oily", "dry", "combination", "normal", "sensitive"}
	concernTraits  = []string{"acne", "dryness", "redness", "aging"}
)

// ErrIncomplete is returned by Result before all questions are answered.
var ErrIncomplete = errors.New("assessment is not complete")

// Profile is the classifier output: one dominant skin type and the set
// of concerns with positive accumulated score, both capitalized for
// display and for saving as preferences.
type Profile struct {
	SkinType string
	Concerns []string
}

// Preferences converts the profile into the API preference payload.
func (p Profile) Preferences() api.Preferences {
	return api.Preferences{
		SkinType:     p.SkinType,
		SkinConcerns: p.Concerns,
	}
}

// Quiz tracks one run through the fixed question set. A new run starts
// from a fresh Quiz; no state is shared between runs.
type Quiz struct {
	questions []Question
	answers   []int
}

// NewQuiz starts a fresh, independent quiz instance.
func NewQuiz() *Quiz {
	return &Quiz{questions: Questions()}
}

// Questions returns the question set of this quiz run.
func (q *Quiz) Questions() []Question {
	return q.questions
}

// Current returns the question the cursor points at, or false when the
// quiz is complete.
func (q *Quiz) Current() (Question, bool) {
	if q.Complete() {
		return Question{}, false
	}
	return q.questions[len(q.answers)], true
}

// Progress reports answered and total question counts.
func (q *Quiz) Progress() (answered, total int) {
	return len(q.answers), len(q.questions)
}

// Answer records the selected option index for the current question and
// advances the cursor.
func (q *Quiz) Answer(optionIndex int) error {
	if q.Complete() {
		return errors.New("all questions already answered")
	}
	current := q.questions[len(q.answers)]
	if optionIndex < 0 || optionIndex >= len(current.Options) {
		return fmt.Errorf("option %d out of range for question %d (have %d options)",
			optionIndex, len(q.answers)+1, len(current.Options))
	}
	q.answers = append(q.answers, optionIndex)
	return nil
}

// Complete reports whether every question has been answered.
func (q *Quiz) Complete() bool {
	return len(q.answers) == len(q.questions)
}

// Result finalizes the quiz into a Profile. It is idempotent: the same
// answers always produce the same profile.
func (q *Quiz) Result() (Profile, error) {
	if !q.Complete() {
		return Profile{}, ErrIncomplete
	}
	return score(q.questions, q.answers), nil
}

// score aggregates option weights into the two disjoint trait mappings
// and selects the dominant skin type plus positive-score concerns.
func score(questions []Question, answers []int) Profile {
	typeScores := make(map[string]int, len(skinTypeTraits))
	for _, trait := range skinTypeTraits {
		typeScores[trait] = 0
	}
	concernScores := make(map[string]int, len(concernTraits))
	for _, trait := range concernTraits {
		concernScores[trait] = 0
	}

	for i, answer := range answers {
		selected := questions[i].Options[answer]
		for trait, weight := range selected.Score {
			if _, ok := typeScores[trait]; ok {
				typeScores[trait] += weight
			} else if _, ok := concernScores[trait]; ok {
				concernScores[trait] += weight
			}
			// Unrecognized traits are silently ignored.
		}
	}

	// First-declared trait wins ties. With all-zero scores this still
	// resolves deterministically to the first declared skin type.
	best := skinTypeTraits[0]
	for _, trait := range skinTypeTraits[1:] {
		if typeScores[trait] > typeScores[best] {
			best = trait
		}
	}

	var concerns []string
	for _, trait := range concernTraits {
		if concernScores[trait] > 0 {
			concerns = append(concerns, capitalize(trait))
		}
	}

	return Profile{
		SkinType: capitalize(best),
		Concerns: concerns,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
