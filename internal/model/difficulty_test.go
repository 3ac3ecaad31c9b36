package model

import "testing"

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"MEDIUM", DifficultyMedium, false},
		{" hard ", DifficultyHard, false},
		{"", "", true},
		{"extreme", "", true},
	}
	for _, c := range cases {
		got, err := ParseDifficulty(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}
}

func TestParseAnswerLetter(t *testing.T) {
	cases := []struct {
		in      string
		want    AnswerLetter
		wantErr bool
	}{
		{"A", AnswerA, false},
		{"b", AnswerB, false},
		{" d ", AnswerD, false},
		{"", "", true},
		{"E", "", true},
		{"AB", "", true},
	}
	for _, c := range cases {
		got, err := ParseAnswerLetter(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseAnswerLetter(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Errorf("ParseAnswerLetter(%q) = %q, %v; want %q", c.in, got, err, c.want)
		}
	}
}
