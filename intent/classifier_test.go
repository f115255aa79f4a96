package intent

import (
	"testing"

	"github.com/dalil-ai/dalil/model"
)

func TestClassifyArabic(t *testing.T) {
	c := New()

	cases := []struct {
		text string
		want model.Intent
	}{
		{"ابحث عن الذكاء الاصطناعي", model.IntentSearch},
		{"اكتب كود بايثون", model.IntentGenerateCode},
		{"نفذ الأمر ls", model.IntentExecuteCommand},
		{"انشئ ملف للملاحظات", model.IntentCreateFile},
		{"افتح ملف الإعدادات", model.IntentReadFile},
		{"حلل هذه البيانات", model.IntentAnalyze},
		{"ترجم هذا النص", model.IntentTranslate},
		{"لخص المقال", model.IntentSummarize},
		{"السلام عليكم", model.IntentGreeting},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyArabicWithDiacritics(t *testing.T) {
	c := New()
	// Vocalized form of a search request still classifies after
	// normalization strips the tashkeel.
	if got := c.Classify("ابْحَثْ عن المعلومات"); got != model.IntentSearch {
		t.Errorf("expected search, got %q", got)
	}
}

func TestClassifyEnglish(t *testing.T) {
	c := New()

	cases := []struct {
		text string
		want model.Intent
	}{
		{"search for AI", model.IntentSearch},
		{"please find the docs", model.IntentSearch},
		{"write a Python script", model.IntentGenerateCode},
		{"run the tests", model.IntentExecuteCommand},
		{"create file notes.txt", model.IntentCreateFile},
		{"open file config.yaml", model.IntentReadFile},
		{"analyze this dataset", model.IntentAnalyze},
		{"translate this paragraph", model.IntentTranslate},
		{"summarize the article", model.IntentSummarize},
		{"hello there", model.IntentGreeting},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.text); got != tc.want {
			t.Errorf("Classify(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := New()

	// Search is declared before GenerateCode, so a request containing
	// keywords for both resolves to search.
	if got := c.Classify("ابحث عن طريقة ثم اكتب كود"); got != model.IntentSearch {
		t.Errorf("expected search to win on overlap, got %q", got)
	}
	if got := c.Classify("search for example code"); got != model.IntentSearch {
		t.Errorf("expected search to win on English overlap, got %q", got)
	}
}

func TestClassifyArabicTableBeatsEnglish(t *testing.T) {
	c := New()
	// An Arabic keyword hit short-circuits the English pass entirely.
	if got := c.Classify("حلل the search results"); got != model.IntentAnalyze {
		t.Errorf("expected Arabic analyze to win, got %q", got)
	}
}

func TestClassifyUnknown(t *testing.T) {
	c := New()
	for _, text := range []string{"asdkj qwlekj", "", "   ", "το κείμενο"} {
		if got := c.Classify(text); got != model.IntentUnknown {
			t.Errorf("Classify(%q) = %q, want unknown", text, got)
		}
	}
}

func TestClassifyIsPure(t *testing.T) {
	c := New()
	first := c.Classify("search for AI")
	for i := 0; i < 5; i++ {
		if got := c.Classify("search for AI"); got != first {
			t.Fatalf("classification changed between calls: %q != %q", got, first)
		}
	}
}
