package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pylearn_backend/internal/model"
	"pylearn_backend/internal/util"
)

// fakeExerciseStore keeps exercises in memory in insertion order, standing
// in for the gorm repository: Create assigns missing IDs and timestamps the
// way the model hooks do, FindByID and Delete report a missing row as
// util.ErrExerciseNotFound.
type fakeExerciseStore struct {
	items map[string]*model.Exercise
	order []string
}

func newFakeExerciseStore() *fakeExerciseStore {
	return &fakeExerciseStore{items: make(map[string]*model.Exercise)}
}

func (s *fakeExerciseStore) FindAll() ([]model.Exercise, error) {
	out := make([]model.Exercise, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.items[id])
	}
	return out, nil
}

func (s *fakeExerciseStore) FindByID(id string) (*model.Exercise, error) {
	stored, ok := s.items[id]
	if !ok {
		return nil, util.ErrExerciseNotFound
	}
	copied := *stored
	return &copied, nil
}

func (s *fakeExerciseStore) Create(exercise *model.Exercise) error {
	if exercise.ID == "" {
		exercise.ID = model.GenerateUUID()
	}
	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}
	exercise.UpdatedAt = time.Now()
	copied := *exercise
	s.items[exercise.ID] = &copied
	s.order = append(s.order, exercise.ID)
	return nil
}

func (s *fakeExerciseStore) Update(exercise *model.Exercise) error {
	if _, ok := s.items[exercise.ID]; !ok {
		return util.ErrExerciseNotFound
	}
	exercise.UpdatedAt = time.Now()
	copied := *exercise
	s.items[exercise.ID] = &copied
	return nil
}

func (s *fakeExerciseStore) Delete(id string) error {
	if _, ok := s.items[id]; !ok {
		return util.ErrExerciseNotFound
	}
	delete(s.items, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeSubmissionStore appends submissions and filters by exercise in
// insertion order, matching the repository's submitted_at ASC listing.
type fakeSubmissionStore struct {
	submissions []model.Submission
}

func (s *fakeSubmissionStore) Create(submission *model.Submission) error {
	s.submissions = append(s.submissions, *submission)
	return nil
}

func (s *fakeSubmissionStore) FindByExerciseID(exerciseID string) ([]model.Submission, error) {
	var out []model.Submission
	for _, sub := range s.submissions {
		if sub.ExerciseID == exerciseID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func newTestExerciseService() (*ExerciseService, *fakeExerciseStore, *fakeSubmissionStore) {
	exercises := newFakeExerciseStore()
	submissions := &fakeSubmissionStore{}
	return NewExerciseService(exercises, submissions), exercises, submissions
}

func seedExercise(t *testing.T, svc *ExerciseService) *model.Exercise {
	t.Helper()
	ex := &model.Exercise{
		Title:      "Sum a list",
		Difficulty: model.DifficultyBeginner,
		Topic:      "lists",
	}
	if err := svc.Create(ex); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return ex
}

func TestGetMissingExercise(t *testing.T) {
	svc, _, _ := newTestExerciseService()

	_, err := svc.Get("no-such-id")
	if !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("error = %v, want ErrExerciseNotFound", err)
	}
}

func TestUpdatePreservesIdentityAndCreatedAt(t *testing.T) {
	svc, store, _ := newTestExerciseService()
	ex := seedExercise(t, svc)

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	store.items[ex.ID].CreatedAt = created

	updated, err := svc.Update(ex.ID, &model.Exercise{
		Title:      "Sum a list of numbers",
		Difficulty: model.DifficultyIntermediate,
		Topic:      "lists",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.ID != ex.ID {
		t.Errorf("ID = %q, identity must survive updates", updated.ID)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v (never touched by updates)", updated.CreatedAt, created)
	}
	if updated.Title != "Sum a list of numbers" || updated.Difficulty != model.DifficultyIntermediate {
		t.Errorf("updated fields not applied: %+v", updated)
	}
}

func TestUpdateRequiresValidDifficulty(t *testing.T) {
	svc, _, _ := newTestExerciseService()
	ex := seedExercise(t, svc)

	for _, difficulty := range []string{"", "expert"} {
		_, err := svc.Update(ex.ID, &model.Exercise{Title: "t", Difficulty: difficulty})
		if !errors.Is(err, util.ErrInvalidDifficulty) {
			t.Errorf("Update(difficulty=%q) error = %v, want ErrInvalidDifficulty", difficulty, err)
		}
	}

	// The stored row is untouched by the rejected updates.
	stored, err := svc.Get(ex.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Difficulty != model.DifficultyBeginner {
		t.Errorf("Difficulty = %q, want beginner", stored.Difficulty)
	}
}

func TestUpdateMissingExercise(t *testing.T) {
	svc, _, _ := newTestExerciseService()

	_, err := svc.Update("no-such-id", &model.Exercise{Title: "t", Difficulty: model.DifficultyBeginner})
	if !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("error = %v, want ErrExerciseNotFound", err)
	}
}

func TestDeleteMissingExercise(t *testing.T) {
	svc, _, _ := newTestExerciseService()

	if err := svc.Delete("no-such-id"); !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("error = %v, want ErrExerciseNotFound", err)
	}
}

func TestCheckSubmissionAppendsAssessedSubmission(t *testing.T) {
	svc, _, subs := newTestExerciseService()
	ex := seedExercise(t, svc)

	first, err := svc.CheckSubmission(ex.ID, "x = 1")
	if err != nil {
		t.Fatalf("CheckSubmission() error = %v", err)
	}
	if first.IsCorrect || first.Score != 0 {
		t.Errorf("first assessment = score %d correct %t, want 0/false", first.Score, first.IsCorrect)
	}

	second, err := svc.CheckSubmission(ex.ID, "def f():\n    return 1")
	if err != nil {
		t.Fatalf("CheckSubmission() error = %v", err)
	}
	if !second.IsCorrect || second.Score != 70 {
		t.Errorf("second assessment = score %d correct %t, want 70/true", second.Score, second.IsCorrect)
	}

	history, err := svc.Submissions(ex.ID)
	if err != nil {
		t.Fatalf("Submissions() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2 (submissions are append-only)", len(history))
	}
	if history[0].ID != first.ID || history[1].ID != second.ID {
		t.Error("history must list submissions oldest first")
	}
	if history[0].Score != 0 || history[1].Score != 70 {
		t.Errorf("stored assessments changed: %d, %d", history[0].Score, history[1].Score)
	}
	if len(subs.submissions) != 2 {
		t.Errorf("persisted submissions = %d, want 2", len(subs.submissions))
	}
}

func TestCheckSubmissionMissingExercise(t *testing.T) {
	svc, _, _ := newTestExerciseService()

	_, err := svc.CheckSubmission("no-such-id", "print(1)")
	if !errors.Is(err, util.ErrExerciseNotFound) {
		t.Errorf("error = %v, want ErrExerciseNotFound", err)
	}
}

func TestListReturnsExercisesInCreationOrder(t *testing.T) {
	svc, _, _ := newTestExerciseService()

	first := seedExercise(t, svc)
	second, err := svc.GenerateTemplated(model.DifficultyAdvanced, "recursion")
	if err != nil {
		t.Fatalf("GenerateTemplated() error = %v", err)
	}

	all, err := svc.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Errorf("List() order wrong: %+v", all)
	}
}

func TestNewTemplatedExercise(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		topic      string
		wantTopic  string
		wantPrefix string
	}{
		{
			name:       "general topic",
			difficulty: "beginner",
			topic:      "general",
			wantTopic:  "general",
			wantPrefix: "beginner exercise",
		},
		{
			name:       "empty topic defaults to general",
			difficulty: "intermediate",
			topic:      "",
			wantTopic:  "general",
			wantPrefix: "intermediate exercise",
		},
		{
			name:       "named topic prefixes the title",
			difficulty: "advanced",
			topic:      "recursion",
			wantTopic:  "recursion",
			wantPrefix: "recursion - advanced exercise",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex := newTemplatedExercise(tt.difficulty, tt.topic)

			if ex.Title != tt.wantPrefix {
				t.Errorf("Title = %q, want %q", ex.Title, tt.wantPrefix)
			}
			if ex.Topic != tt.wantTopic {
				t.Errorf("Topic = %q, want %q", ex.Topic, tt.wantTopic)
			}
			if ex.Difficulty != tt.difficulty {
				t.Errorf("Difficulty = %q", ex.Difficulty)
			}
			if len(ex.Hints) == 0 {
				t.Error("templated exercise should ship with hints")
			}
			if len(ex.TestCases) == 0 {
				t.Error("templated exercise should ship with a sample test case")
			}
			if !strings.HasPrefix(ex.StarterCode, "#") {
				t.Errorf("StarterCode = %q, want a Python comment scaffold", ex.StarterCode)
			}
		})
	}
}
