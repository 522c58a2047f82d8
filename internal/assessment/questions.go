package assessment

// Option is one selectable answer with its trait weight contributions.
type Option struct {
	Text  string
	Score map[string]int
}

// Question is a single quiz question with ordered options.
type Question struct {
	Prompt  string
	Options []Option
}

// Questions returns the fixed, ordered question set. The quiz always has
// exactly these five questions; answers are recorded by option index.
func Questions() []Question {
	return []Question{
		{
			Prompt: "How does your skin feel a few hours after washing your face?",
			Options: []Option{
				{Text: "Tight and dry all over", Score: map[string]int{"dry": 2}},
				{Text: "Oily all over", Score: map[string]int{"oily": 2}},
				{Text: "Oily in the T-zone (forehead, nose, chin) but normal or dry elsewhere", Score: map[string]int{"combination": 2}},
				{Text: "Comfortable and balanced", Score: map[string]int{"normal": 2}},
			},
		},
		{
			Prompt: "How often do you experience breakouts?",
			Options: []Option{
				{Text: "Frequently, especially in the T-zone", Score: map[string]int{"oily": 1, "acne": 1}},
				{Text: "Occasionally", Score: map[string]int{"normal": 1}},
				{Text: "Rarely", Score: map[string]int{"dry": 1, "normal": 1}},
				{Text: "Never", Score: map[string]int{"normal": 1, "dry": 1}},
			},
		},
		{
			Prompt: "How does your skin react to new products?",
			Options: []Option{
				{Text: "Often becomes red, itchy, or irritated", Score: map[string]int{"sensitive": 2}},
				{Text: "Occasionally becomes slightly irritated", Score: map[string]int{"sensitive": 1}},
				{Text: "Rarely has a negative reaction", Score: map[string]int{"normal": 1}},
				{Text: "Never has a negative reaction", Score: map[string]int{"normal": 1}},
			},
		},
		{
			Prompt: "What skin concerns do you experience most often?",
			Options: []Option{
				{Text: "Dryness, flakiness, or tightness", Score: map[string]int{"dry": 1, "dryness": 1}},
				{Text: "Excess oil and shine", Score: map[string]int{"oily": 1}},
				{Text: "Redness or sensitivity", Score: map[string]int{"sensitive": 1, "redness": 1}},
				{Text: "Fine lines and wrinkles", Score: map[string]int{"aging": 1}},
			},
		},
		{
			Prompt: "How large are your pores?",
			Options: []Option{
				{Text: "Large and visible, especially in the T-zone", Score: map[string]int{"oily": 1}},
				{Text: "Medium-sized and only visible in some areas", Score: map[string]int{"combination": 1}},
				{Text: "Small and barely visible", Score: map[string]int{"dry": 1, "normal": 1}},
				{Text: "I'm not sure / I don't notice my pores", Score: map[string]int{"normal": 1}},
			},
		},
	}
}
