// Package intent classifies user requests into a closed set of intents
// using ordered keyword tables: Arabic phrases first, English fallback.
//
// Classification is a pure function of the input text. The keyword tables
// and their priority order are configuration data, kept separate from the
// matching logic so they can be audited and extended without touching it.
package intent

import (
	"strings"

	"github.com/dalil-ai/dalil/arabic"
	"github.com/dalil-ai/dalil/model"
)

// rule binds an intent to its keyword phrases. A phrase matches when it is
// a substring of the prepared input.
type rule struct {
	intent   model.Intent
	keywords []string
}

// Arabic rules, checked first against normalized lowercased input.
// Order is priority order: the first rule with any matching phrase wins,
// so a request containing both "ابحث" and "اكتب كود" classifies as search.
var arabicRules = []rule{
	{model.IntentSearch, []string{"ابحث", "بحث", "ابحث عن", "جد", "ايجاد", "أبحث"}},
	{model.IntentGenerateCode, []string{"اكتب كود", "كود", "برمجة", "انشئ برنامج", "اكتب برنامج", "كود برمجي", "سكريبت"}},
	{model.IntentExecuteCommand, []string{"نفذ", "شغل", "قم بتنفيذ", "تنفيذ", "تشغيل"}},
	{model.IntentCreateFile, []string{"انشئ ملف", "اكتب ملف", "احفظ في ملف", "اصنع ملف"}},
	{model.IntentReadFile, []string{"اقرأ ملف", "افتح ملف", "اعرض محتوى", "محتوى الملف"}},
	{model.IntentAnalyze, []string{"حلل", "تحليل", "قم بتحليل", "افحص"}},
	{model.IntentTranslate, []string{"ترجم", "ترجمة", "قم بالترجمة"}},
	{model.IntentSummarize, []string{"لخص", "تلخيص", "اختصر", "خلاصة"}},
	{model.IntentGreeting, []string{"مرحبا", "اهلا", "السلام عليكم", "صباح الخير", "مساء الخير"}},
}

// English rules, checked against the lowercased raw input when no Arabic
// phrase matched. Same priority ordering as the Arabic table. Greeting
// phrases are chosen to stay word-safe under substring matching ("hi"
// would match inside "this").
var englishRules = []rule{
	{model.IntentSearch, []string{"search", "find", "look for"}},
	{model.IntentGenerateCode, []string{"code", "program", "script", "generate"}},
	{model.IntentExecuteCommand, []string{"execute", "run", "command"}},
	{model.IntentCreateFile, []string{"create file", "write file", "save to"}},
	{model.IntentReadFile, []string{"read file", "open file", "file content"}},
	{model.IntentAnalyze, []string{"analyze", "analysis", "examine"}},
	{model.IntentTranslate, []string{"translate", "translation"}},
	{model.IntentSummarize, []string{"summarize", "summary", "tl;dr"}},
	{model.IntentGreeting, []string{"hello", "good morning", "good evening", "how are you"}},
}

// Classifier maps free text to one intent. The zero value is not usable;
// construct with New.
type Classifier struct {
	arabicRules  []rule
	englishRules []rule
}

// New creates a classifier with the default keyword tables.
func New() *Classifier {
	return &Classifier{
		arabicRules:  arabicRules,
		englishRules: englishRules,
	}
}

// Classify returns the intent for text. It is total and never fails:
// if no rule matches in either table the result is IntentUnknown.
func (c *Classifier) Classify(text string) model.Intent {
	normalized := arabic.Normalize(strings.ToLower(text))
	if intent, ok := match(c.arabicRules, normalized); ok {
		return intent
	}

	// Arabic normalization has no effect on English text, so the English
	// pass operates on the plain lowercased original.
	lowered := strings.ToLower(text)
	if intent, ok := match(c.englishRules, lowered); ok {
		return intent
	}

	return model.IntentUnknown
}

func match(rules []rule, text string) (model.Intent, bool) {
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(text, keyword) {
				return r.intent, true
			}
		}
	}
	return model.IntentUnknown, false
}
