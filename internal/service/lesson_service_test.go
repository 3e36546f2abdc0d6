package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pylearn_backend/internal/config"
)

const lessonReply = "Here you go!\n```json\n{\n  \"title\": \"Intro to Loops\",\n  \"content\": \"<p>Loops repeat work.</p>\",\n  \"exercise\": {\n    \"question\": \"Sum the numbers 1..10 with a for loop.\",\n    \"hints\": [\"use range\", \"accumulate into a variable\"],\n    \"starter_code\": \"total = 0\\n\",\n    \"solution\": \"total = 0\\nfor i in range(1, 11):\\n    total += i\\n\",\n    \"validation_criteria\": [\"uses a for loop\", \"produces 55\"]\n  }\n}\n```"

func TestGenerateLesson(t *testing.T) {
	fake := &fakeAssistant{
		statuses: []string{"queued", "in_progress", "completed"},
		messages: assistantText(lessonReply),
	}
	svc := NewLessonService(newTestClient(t, fake))

	lesson, err := svc.GenerateLesson(context.Background(), "beginner")
	if err != nil {
		t.Fatalf("GenerateLesson() error = %v", err)
	}

	if lesson.Title != "Intro to Loops" {
		t.Errorf("Title = %q", lesson.Title)
	}
	if lesson.Exercise.Question == "" {
		t.Error("exercise question should not be empty")
	}
	if len(lesson.Exercise.Hints) != 2 {
		t.Errorf("hints = %v, want 2 ordered hints", lesson.Exercise.Hints)
	}
	if lesson.Exercise.Hints[0] != "use range" {
		t.Errorf("hint order not preserved: %v", lesson.Exercise.Hints)
	}
	if len(lesson.Exercise.ValidationCriteria) != 2 {
		t.Errorf("validation criteria = %v", lesson.Exercise.ValidationCriteria)
	}
}

func TestGenerateLessonStageTags(t *testing.T) {
	tests := []struct {
		name      string
		fake      *fakeAssistant
		wantStage Stage
	}{
		{
			name: "run failed",
			fake: &fakeAssistant{
				statuses: []string{"failed"},
				lastErr:  "model overloaded",
			},
			wantStage: StageRunFailed,
		},
		{
			name: "run incomplete",
			fake: &fakeAssistant{
				statuses: []string{"cancelled"},
			},
			wantStage: StageRunIncomplete,
		},
		{
			name: "no assistant response",
			fake: &fakeAssistant{
				statuses: []string{"completed"},
				messages: []Message{},
			},
			wantStage: StageNoAssistantResponse,
		},
		{
			name: "no JSON in reply",
			fake: &fakeAssistant{
				statuses: []string{"completed"},
				messages: assistantText("sorry, I can only answer in prose"),
			},
			wantStage: StageNoJSONFound,
		},
		{
			name: "invalid JSON in reply",
			fake: &fakeAssistant{
				statuses: []string{"completed"},
				messages: assistantText("```json\n{broken\n```"),
			},
			wantStage: StageInvalidJSON,
		},
		{
			name: "lesson missing hints",
			fake: &fakeAssistant{
				statuses: []string{"completed"},
				messages: assistantText(`{"title": "t", "content": "c", "exercise": {"question": "q", "hints": [], "starter_code": "", "solution": "", "validation_criteria": ["x"]}}`),
			},
			wantStage: StageInvalidJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLessonService(newTestClient(t, tt.fake))

			_, err := svc.GenerateLesson(context.Background(), "beginner")
			if err == nil {
				t.Fatal("expected an error")
			}

			var tagged *PipelineError
			if !errors.As(err, &tagged) {
				t.Fatalf("error = %v, want a stage-tagged PipelineError", err)
			}
			if tagged.Stage != tt.wantStage {
				t.Errorf("Stage = %s, want %s", tagged.Stage, tt.wantStage)
			}
		})
	}
}

func TestGenerateLessonNotConfigured(t *testing.T) {
	// No assistant ID and no reachable server: the check must fire before
	// any network call.
	client := NewAssistantClient(config.AssistantConfig{
		BaseURL:      "http://127.0.0.1:1",
		PollInterval: time.Millisecond,
		PollTimeout:  time.Second,
	})
	svc := NewLessonService(client)

	_, err := svc.GenerateLesson(context.Background(), "beginner")

	var tagged *PipelineError
	if !errors.As(err, &tagged) {
		t.Fatalf("error = %v, want PipelineError", err)
	}
	if tagged.Stage != StageNotConfigured {
		t.Errorf("Stage = %s, want %s", tagged.Stage, StageNotConfigured)
	}
	if !errors.Is(err, ErrAssistantNotConfigured) {
		t.Errorf("error chain should include ErrAssistantNotConfigured, got %v", err)
	}
}
