package model

import (
	"strings"
	"testing"
)

func TestAnswerSheetValue(t *testing.T) {
	two := 2
	sheet := AnswerSheet{1: &two, 2: nil}

	v, err := sheet.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	raw := string(v.([]byte))

	// JSON 对象的键是字符串形式的题目ID
	if !strings.Contains(raw, `"1":2`) {
		t.Errorf("serialized sheet %q missing answered entry", raw)
	}
	if !strings.Contains(raw, `"2":null`) {
		t.Errorf("serialized sheet %q missing unanswered entry", raw)
	}
}

func TestAnswerSheetScan(t *testing.T) {
	var sheet AnswerSheet
	if err := sheet.Scan([]byte(`{"1":2,"2":null}`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if sheet[1] == nil || *sheet[1] != 2 {
		t.Errorf("sheet[1] = %v, want 2", sheet[1])
	}
	selected, ok := sheet[2]
	if !ok || selected != nil {
		t.Errorf("sheet[2] = %v (present=%v), want explicit nil", selected, ok)
	}
}

func TestQuestionOptionText(t *testing.T) {
	q := Question{Option1: "A", Option2: "B", Option3: "C", Option4: "D"}

	for n, want := range map[int]string{1: "A", 2: "B", 3: "C", 4: "D"} {
		got, ok := q.OptionText(n)
		if !ok || got != want {
			t.Errorf("OptionText(%d) = %q/%v, want %q", n, got, ok, want)
		}
	}
	for _, n := range []int{0, 5, -3} {
		if _, ok := q.OptionText(n); ok {
			t.Errorf("OptionText(%d) should be out of range", n)
		}
	}
}
