package drafting

import (
	"fmt"
	"strings"

	"github.com/fift2939-create/ather1/internal/locale"
)

const ideasSystemPrompt = `You are an international expert in writing humanitarian and development project proposals.
You answer with JSON only. Never add commentary, markdown or code fences.`

const proposalSystemPrompt = `You are a Senior Consultant for International NGOs who drafts complete, donor-ready project proposals.
You answer with JSON only. Never add commentary, markdown or code fences.
Every budget line must carry numeric monthlyCost and frequency values, a quantity text that starts with the number of units, and a category.`

func ideasPrompt(vision, country string, lang locale.Language) string {
	if lang == locale.Arabic {
		return fmt.Sprintf(`أنت خبير دولي في كتابة مقترحات المشاريع. بناءً على الرؤية: "%s" والبلد: "%s". قم بتوليد 4 أفكار مشاريع مبتكرة وواقعية جداً. الرد JSON حصراً بالعربية.`, vision, country)
	}
	return fmt.Sprintf(`You are an international project proposal expert. Based on vision: "%s" and country: "%s". Generate 4 highly innovative and realistic project ideas. Response must be JSON in English only.`, vision, country)
}

func proposalPrompt(ideaName, ideaDescription, country string, lang locale.Language, categories []string) string {
	var b strings.Builder
	if lang == locale.Arabic {
		fmt.Fprintf(&b, `أنت كبير مستشاري المنظمات الدولية. صغ مقترحاً احترافياً "كاملاً" لفكرة: "%s" في "%s".
يجب أن يكون السرد مقنعاً جداً وشاملاً:
1. تحليل المشكلة: تفاصيل اجتماعية واقتصادية دقيقة.
2. نظرية التغيير: شرح عميق لكيفية تحويل المدخلات إلى أثر.
3. أهداف SMART: أرقام ونسب مئوية وتواريخ.
4. SWOT: تحليل داخلي وخارجي مفصل.
5. خطة M&E: مؤشرات أداء (KPIs)، أدوات (استبيانات، مقابلات)، وآلية تتبع.
6. الميزانية: تفصيل ممل (كمية، كلفة شهرية، تكرار) موزعة على: %s.
`, ideaName, country, strings.Join(categories, "، "))
		if ideaDescription != "" {
			fmt.Fprintf(&b, "وصف الفكرة: %s\n", ideaDescription)
		}
		b.WriteString("الرد JSON حصراً بالعربية الرصينة.")
		return b.String()
	}

	fmt.Fprintf(&b, `You are a Senior Consultant for International NGOs. Write a "full" professional proposal for: "%s" in "%s".
The narrative must be highly persuasive and exhaustive:
1. Problem Analysis: Precise socio-economic details.
2. Theory of Change: Deep explanation of path to impact.
3. SMART Goals: Hard numbers, percentages, and deadlines.
4. SWOT: Detailed internal/external analysis.
5. M&E Plan: KPIs, tools (surveys, KIIs), and tracking mechanisms.
6. Budget: Extreme detail (qty, monthly cost, freq) distributed across: %s.
`, ideaName, country, strings.Join(categories, ", "))
	if ideaDescription != "" {
		fmt.Fprintf(&b, "Idea description: %s\n", ideaDescription)
	}
	b.WriteString("Response must be JSON in English only.")
	return b.String()
}
