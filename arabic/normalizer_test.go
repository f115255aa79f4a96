package arabic

import "testing"

func TestIsArabic(t *testing.T) {
	if !IsArabic("مرحبا بالعالم") {
		t.Error("expected Arabic text to be detected")
	}
	if !IsArabic("please read ملف.txt") {
		t.Error("expected mixed text with Arabic letters to be detected")
	}
	if IsArabic("hello world") {
		t.Error("expected Latin text to not be detected as Arabic")
	}
	if IsArabic("") {
		t.Error("expected empty string to not be detected as Arabic")
	}
}

func TestRemoveDiacritics(t *testing.T) {
	// "محمد" fully vocalized with fatha, damma and shadda marks.
	input := "مُحَمَّد"
	got := RemoveDiacritics(input)
	if got != "محمد" {
		t.Errorf("expected 'محمد', got %q", got)
	}

	// Output must contain no code points in the diacritic range.
	for _, r := range got {
		if (r >= 0x0617 && r <= 0x061A) || (r >= 0x064B && r <= 0x0652) {
			t.Errorf("diacritic %U survived removal", r)
		}
	}
}

func TestRemoveDiacriticsNonArabic(t *testing.T) {
	if got := RemoveDiacritics("hello world"); got != "hello world" {
		t.Errorf("non-Arabic input changed: %q", got)
	}
}

func TestNormalizeFoldsLetterVariants(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"أحمد", "احمد"},              // Alef with hamza above
		{"إسلام", "اسلام"},            // Alef with hamza below
		{"آمال", "امال"},              // Alef with madda
		{"مدرسة", "مدرسه"},            // Teh Marbuta to Heh
		{"  كيف   حالك ", "كيف حالك"}, // whitespace collapse and trim
	}
	for _, tc := range cases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"أَهْلاً وَسَهْلاً",
		"إلى المدرسة",
		"  plain   english  text ",
		"",
		"ابحث عن الذكاء الاصطناعي",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	got := FormatDisplay("مرحبا ، كيف حالك ؟")
	want := "مرحبا، كيف حالك؟"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// Digits directly followed by Arabic letters get a separating space.
	got = FormatDisplay("لدي 3ملفات")
	if got != "لدي 3 ملفات" {
		t.Errorf("expected digit/letter boundary space, got %q", got)
	}
}

func TestResponseTemplates(t *testing.T) {
	if Response("search") == "" {
		t.Error("expected non-empty search response")
	}
	if Response("no_such_intent") != Response("unknown") {
		t.Error("unknown intents should fall back to the clarification template")
	}
}
