package service

import "testing"

func TestEvaluateCode(t *testing.T) {
	tests := []struct {
		name        string
		code        string
		wantScore   int
		wantCorrect bool
	}{
		{
			name:        "function with return",
			code:        "def f():\n    return 1",
			wantScore:   70,
			wantCorrect: true,
		},
		{
			name:        "bare assignment",
			code:        "x = 1",
			wantScore:   0,
			wantCorrect: false,
		},
		{
			name:        "print only",
			code:        "print('hello')",
			wantScore:   30,
			wantCorrect: false,
		},
		{
			name:        "all three markers",
			code:        "def f():\n    print('x')\n    return 1",
			wantScore:   100,
			wantCorrect: true,
		},
		{
			name:        "print and def without return",
			code:        "def f():\n    print('x')",
			wantScore:   60,
			wantCorrect: false,
		},
		{
			name:        "empty code",
			code:        "",
			wantScore:   0,
			wantCorrect: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateCode(tt.code)

			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.IsCorrect != tt.wantCorrect {
				t.Errorf("IsCorrect = %v, want %v", got.IsCorrect, tt.wantCorrect)
			}
			if got.Feedback == "" {
				t.Error("Feedback should not be empty")
			}
			if got.Suggestions == "" {
				t.Error("Suggestions should not be empty")
			}
		})
	}
}

func TestEvaluateCodeDeterministic(t *testing.T) {
	code := "def add(a, b):\n    return a + b"
	first := EvaluateCode(code)
	second := EvaluateCode(code)

	if first != second {
		t.Errorf("EvaluateCode is not deterministic: %+v vs %+v", first, second)
	}
}
