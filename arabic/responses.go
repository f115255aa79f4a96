package arabic

import "github.com/dalil-ai/dalil/model"

// Fixed Arabic acknowledgment strings per intent. Response generation is
// template lookup; real text generation is an extension point at the llm
// package boundary.
var responses = map[model.Intent]string{
	model.IntentSearch:         "سأقوم بالبحث عن المعلومات المطلوبة...",
	model.IntentGenerateCode:   "سأقوم بتوليد الكود البرمجي المطلوب...",
	model.IntentExecuteCommand: "سأقوم بتنفيذ الأمر المطلوب...",
	model.IntentCreateFile:     "سأقوم بإنشاء الملف المطلوب...",
	model.IntentReadFile:       "سأقوم بقراءة محتوى الملف...",
	model.IntentAnalyze:        "سأقوم بتحليل المعلومات...",
	model.IntentTranslate:      "سأقوم بالترجمة...",
	model.IntentSummarize:      "سأقوم بتلخيص المحتوى...",
	model.IntentGreeting:       "أهلاً وسهلاً! أنا مساعد ذكي جاهز لمساعدتك. كيف يمكنني خدمتك اليوم؟",
	model.IntentUnknown:        "لم أتمكن من فهم الطلب. يرجى إعادة صياغته.",
}

// Response returns the fixed Arabic acknowledgment for an intent.
// Unknown intents fall back to the clarification request.
func Response(intent model.Intent) string {
	if r, ok := responses[intent]; ok {
		return r
	}
	return responses[model.IntentUnknown]
}
