package assessment

import (
	"reflect"
	"testing"
)

func answerAll(t *testing.T, q *Quiz, answers []int) {
	t.Helper()
	for _, a := range answers {
		if err := q.Answer(a); err != nil {
			t.Fatalf("Answer(%d) failed: %v", a, err)
		}
	}
}

func TestQuestions_FixedSet(t *testing.T) {
	questions := Questions()
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if len(q.Options) < 2 {
			t.Errorf("question %d has %d options, want at least 2", i+1, len(q.Options))
		}
	}
}

func TestQuiz_AllFirstOptions(t *testing.T) {
	// Option 0 on every question: dry accumulates 3 (q1 +2, q4 +1),
	// oily 2, sensitive 2. Concerns acne and dryness each land 1.
	quiz := NewQuiz()
	answerAll(t, quiz, []int{0, 0, 0, 0, 0})

	profile, err := quiz.Result()
	if err != nil {
		t.Fatalf("Result failed: %v", err)
	}

	if profile.SkinType != "Dry" {
		t.Errorf("SkinType = %q, want Dry", profile.SkinType)
	}
	if !reflect.DeepEqual(profile.Concerns, []string{"Acne", "Dryness"}) {
		t.Errorf("Concerns = %v, want [Acne Dryness]", profile.Concerns)
	}
}

func TestQuiz_ResultIdempotent(t *testing.T) {
	quiz := NewQuiz()
	answerAll(t, quiz, []int{1, 0, 2, 1, 0})

	first, err := quiz.Result()
	if err != nil {
		t.Fatal(err)
	}
	second, err := quiz.Result()
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Result not idempotent: %v vs %v", first, second)
	}
}

func TestQuiz_Deterministic(t *testing.T) {
	answers := []int{2, 1, 0, 2, 1}

	a := NewQuiz()
	answerAll(t, a, answers)
	b := NewQuiz()
	answerAll(t, b, answers)

	pa, _ := a.Result()
	pb, _ := b.Result()
	if !reflect.DeepEqual(pa, pb) {
		t.Errorf("identical answers produced different profiles: %v vs %v", pa, pb)
	}
}

func TestQuiz_TieBreakDeclarationOrder(t *testing.T) {
	// [1 3 2 0 2] scores dry=3 and normal=3; dry is declared before
	// normal, so dry must win the tie.
	quiz := NewQuiz()
	answerAll(t, quiz, []int{1, 3, 2, 0, 2})

	profile, err := quiz.Result()
	if err != nil {
		t.Fatal(err)
	}
	if profile.SkinType != "Dry" {
		t.Errorf("tie-break: SkinType = %q, want Dry (first declared)", profile.SkinType)
	}
}

func TestQuiz_ConcernsOnlyPositive(t *testing.T) {
	// No option in this sequence contributes to redness or aging.
	quiz := NewQuiz()
	answerAll(t, quiz, []int{0, 0, 2, 0, 0})

	profile, err := quiz.Result()
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range profile.Concerns {
		if c == "Redness" || c == "Aging" {
			t.Errorf("zero-score concern %q must not appear", c)
		}
	}
}

func TestQuiz_AnswerOutOfRange(t *testing.T) {
	quiz := NewQuiz()
	if err := quiz.Answer(7); err == nil {
		t.Error("expected error for out-of-range option index")
	}
	if err := quiz.Answer(-1); err == nil {
		t.Error("expected error for negative option index")
	}
	if answered, _ := quiz.Progress(); answered != 0 {
		t.Errorf("rejected answers must not advance the cursor, answered=%d", answered)
	}
}

func TestQuiz_ResultBeforeComplete(t *testing.T) {
	quiz := NewQuiz()
	answerAll(t, quiz, []int{0, 0})

	if _, err := quiz.Result(); err != ErrIncomplete {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestQuiz_AnswerAfterComplete(t *testing.T) {
	quiz := NewQuiz()
	answerAll(t, quiz, []int{0, 0, 0, 0, 0})

	if err := quiz.Answer(0); err == nil {
		t.Error("expected error when answering a completed quiz")
	}
}

func TestQuiz_RunsAreIndependent(t *testing.T) {
	a := NewQuiz()
	answerAll(t, a, []int{1, 1, 1, 1, 1})

	b := NewQuiz()
	if answered, total := b.Progress(); answered != 0 || total != 5 {
		t.Errorf("fresh quiz progress = %d/%d, want 0/5", answered, total)
	}
}

func TestQuiz_Current(t *testing.T) {
	quiz := NewQuiz()
	q, ok := quiz.Current()
	if !ok {
		t.Fatal("expected a current question on a fresh quiz")
	}
	if q.Prompt != Questions()[0].Prompt {
		t.Errorf("Current = %q, want first question", q.Prompt)
	}

	answerAll(t, quiz, []int{0, 0, 0, 0, 0})
	if _, ok := quiz.Current(); ok {
		t.Error("completed quiz must report no current question")
	}
}

func TestProfile_Preferences(t *testing.T) {
	p := Profile{SkinType: "Oily", Concerns: []string{"Acne"}}
	prefs := p.Preferences()

	if prefs.SkinType != "Oily" {
		t.Errorf("SkinType = %q", prefs.SkinType)
	}
	if !reflect.DeepEqual(prefs.SkinConcerns, []string{"Acne"}) {
		t.Errorf("SkinConcerns = %v", prefs.SkinConcerns)
	}
}
