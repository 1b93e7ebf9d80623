package locale

// Labels is the full set of user-facing strings for one language.
type Labels struct {
	AppName    string
	Welcome    string
	SubWelcome string
	Goal       string

	Country            string
	CountryPlaceholder string
	Vision             string
	VisionPlaceholder  string
	Categories         string
	CategoriesHint     string
	Start              string
	RequiredField      string

	LoadingContext  string
	LoadingProposal string
	IdeasTitle      string
	Select          string
	Sector          string
	TargetGroup     string

	Narrative     string
	Financial     string
	DownloadWord  string
	DownloadExcel string
	Exported      string
	Back          string
	ToggleLang    string

	ExecSummary    string
	ProbAnalysis   string
	TheoryOfChange string
	Goals          string
	SWOT           string
	Strengths      string
	Weaknesses     string
	Opportunities  string
	Threats        string
	Activities     string
	Activity       string
	Details        string
	Output         string
	METitle        string
	Indicators     string
	Tools          string
	Mechanism      string
	Risks          string
	Impact         string
	Mitigation     string
	Sustainability string
	Justification  string
	GeneralGoal    string
	Targets        string
	DirectTargets  string
	IndirectTarget string
	Scope          string
	Results        string
	Assumptions    string

	BudgetEdit   string
	Total        string
	GrandTotal   string
	Subtotal     string
	Item         string
	Cost         string
	Qty          string
	Freq         string
	EditLine     string
	Category     string
	GeneralItems string

	SpreadsheetHeader [10]string

	SetupRequired string
	SetupDesc     string
	SetupSteps    []string
	SetupKeyTitle string
	SetupKeySaved string

	IdeasError string
	DraftError string
}

var englishLabels = Labels{
	AppName:    "ATHAR Architect",
	Welcome:    "Welcome to ATHAR Architect",
	SubWelcome: "Transform your development vision into world-class proposals in seconds.",
	Goal:       "A humanitarian tool that helps NGOs plan their projects, write professional proposals, and measure impact in a simple and smart way.",

	Country:            "Target Country",
	CountryPlaceholder: "e.g. Yemen, Sudan...",
	Vision:             "Project Vision/Description",
	VisionPlaceholder:  "Short project description...",
	Categories:         "Budget Categories (optional)",
	CategoriesHint:     "Comma-separated, blank for the default set",
	Start:              "Start Strategic Analysis",
	RequiredField:      "this field is required",

	LoadingContext:  "Analyzing development context...",
	LoadingProposal: "Drafting technical proposal and budget...",
	IdeasTitle:      "Proposed Strategic Options",
	Select:          "Select & Develop Proposal",
	Sector:          "Sector",
	TargetGroup:     "Target Group",

	Narrative:     "Technical Proposal",
	Financial:     "Financial Budget (Excel)",
	DownloadWord:  "Download Word",
	DownloadExcel: "Download Excel",
	Exported:      "Saved",
	Back:          "Back",
	ToggleLang:    "عربي",

	ExecSummary:    "Executive Summary",
	ProbAnalysis:   "Problem Analysis",
	TheoryOfChange: "Theory of Change",
	Goals:          "Specific SMART Goals",
	SWOT:           "In-depth SWOT Analysis",
	Strengths:      "Strengths",
	Weaknesses:     "Weaknesses",
	Opportunities:  "Opportunities",
	Threats:        "Threats",
	Activities:     "Activity Matrix",
	Activity:       "Activity",
	Details:        "Details",
	Output:         "Output",
	METitle:        "Monitoring & Evaluation (M&E) Plan",
	Indicators:     "Indicators",
	Tools:          "Tools",
	Mechanism:      "Tracking Mechanism",
	Risks:          "Risks",
	Impact:         "Impact",
	Mitigation:     "Mitigation",
	Sustainability: "Sustainability & Exit Strategy",
	Justification:  "Justification",
	GeneralGoal:    "General Goal",
	Targets:        "Target Groups",
	DirectTargets:  "Direct",
	IndirectTarget: "Indirect",
	Scope:          "Scope",
	Results:        "Expected Results",
	Assumptions:    "Assumptions",

	BudgetEdit:   "Edit Project Budget",
	Total:        "Total Budget",
	GrandTotal:   "Grand Total",
	Subtotal:     "Subtotal",
	Item:         "Item",
	Cost:         "Monthly Cost",
	Qty:          "Quantity",
	Freq:         "Frequency",
	EditLine:     "Edit Budget Line",
	Category:     "Category",
	GeneralItems: "General Items",

	SpreadsheetHeader: [10]string{
		"Budget Code", "Item", "Monthly Cost", "Allocation", "Qty",
		"Unit", "Freq", "Freq Unit", "Total", "Narrative",
	},

	SetupRequired: "API Key Required",
	SetupDesc:     "Drafting needs an AI service key. Add it to your environment or config file.",
	SetupSteps: []string{
		"1. Export the key in your shell: export ATHAR_API_KEY=<your key>",
		"2. Or set api_key in ~/.athar/config.yaml (or the file named by ATHAR_CONFIG).",
		"3. Restart athar so the key is picked up.",
		"4. In the terminal UI you can also press k to enter a key for this session only.",
	},
	SetupKeyTitle: "API key for this session",
	SetupKeySaved: "Key accepted for this session.",

	IdeasError: "AI Engine Connection Error",
	DraftError: "Drafting Error",
}

var arabicLabels = Labels{
	AppName:    "أثر",
	Welcome:    "أهلاً بك في آداة أثر الذكية",
	SubWelcome: "حوّل رؤيتك التنموية إلى مقترحات عالمية المستوى في ثوانٍ.",
	Goal:       "آداة إنسانية تساعد المنظمات غير الحكومية على تخطيط مشاريعها، كتابة مقترحات احترافية، وقياس الأثر بطريقة بسيطة وذكية.",

	Country:            "الدولة المستهدفة",
	CountryPlaceholder: "مثلاً: اليمن، سوريا...",
	Vision:             "رؤية/وصف المشروع",
	VisionPlaceholder:  "وصف مختصر للمبادرة...",
	Categories:         "فئات الميزانية (اختياري)",
	CategoriesHint:     "مفصولة بفواصل، اتركها فارغة للفئات الافتراضية",
	Start:              "بدء التحليل الاستراتيجي",
	RequiredField:      "هذا الحقل مطلوب",

	LoadingContext:  "جاري تحليل السياق التنموي...",
	LoadingProposal: "جاري صياغة المقترح والميزانية التفصيلية...",
	IdeasTitle:      "الخيارات الاستراتيجية المقترحة",
	Select:          "اختيار وتطوير المقترح",
	Sector:          "القطاع",
	TargetGroup:     "الفئة المستهدفة",

	Narrative:     "المقترح الفني",
	Financial:     "الميزانية (Excel)",
	DownloadWord:  "تحميل Word",
	DownloadExcel: "تحميل Excel",
	Exported:      "تم الحفظ",
	Back:          "عودة",
	ToggleLang:    "EN",

	ExecSummary:    "الملخص التنفيذي",
	ProbAnalysis:   "تحليل المشكلة",
	TheoryOfChange: "نظرية التغيير",
	Goals:          "الأهداف المحددة (SMART)",
	SWOT:           "تحليل SWOT المعمق",
	Strengths:      "نقاط القوة",
	Weaknesses:     "نقاط الضعف",
	Opportunities:  "الفرص",
	Threats:        "التهديدات",
	Activities:     "مصفوفة الأنشطة",
	Activity:       "النشاط",
	Details:        "التفاصيل",
	Output:         "المخرج",
	METitle:        "خطة المراقبة والتقييم (M&E)",
	Indicators:     "المؤشرات",
	Tools:          "الأدوات",
	Mechanism:      "آلية التتبع",
	Risks:          "المخاطر",
	Impact:         "الأثر",
	Mitigation:     "التخفيف",
	Sustainability: "الاستدامة والخروج",
	Justification:  "المبررات",
	GeneralGoal:    "الهدف العام",
	Targets:        "الفئات المستهدفة",
	DirectTargets:  "مباشرة",
	IndirectTarget: "غير مباشرة",
	Scope:          "النطاق",
	Results:        "النتائج المتوقعة",
	Assumptions:    "الافتراضات",

	BudgetEdit:   "تحرير ميزانية المشروع",
	Total:        "إجمالي الميزانية",
	GrandTotal:   "المجموع الكلي",
	Subtotal:     "المجموع الفرعي",
	Item:         "البند",
	Cost:         "الكلفة الشهرية",
	Qty:          "الكمية",
	Freq:         "التكرار",
	EditLine:     "تحرير بند الميزانية",
	Category:     "الفئة",
	GeneralItems: "بنود عامة",

	SpreadsheetHeader: [10]string{
		"رمز الموازنة", "العنصر", "الكلفة الشهرية", "التخصيص", "الكمية",
		"الوحدة", "التكرار", "وحدة التكرار", "المجموع", "المبررات",
	},

	SetupRequired: "مطلوب إعداد مفتاح الـ API",
	SetupDesc:     "تحتاج الصياغة إلى مفتاح خدمة الذكاء الاصطناعي. أضفه إلى البيئة أو ملف الإعدادات.",
	SetupSteps: []string{
		"1. صدّر المفتاح في الطرفية: export ATHAR_API_KEY=<المفتاح>",
		"2. أو أضف api_key إلى ‎~/.athar/config.yaml (أو الملف المحدد في ATHAR_CONFIG).",
		"3. أعد تشغيل athar ليتم تحميل المفتاح.",
		"4. في واجهة الطرفية يمكنك الضغط على k لإدخال مفتاح لهذه الجلسة فقط.",
	},
	SetupKeyTitle: "مفتاح الـ API لهذه الجلسة",
	SetupKeySaved: "تم قبول المفتاح لهذه الجلسة.",

	IdeasError: "خطأ في الاتصال بمحرك الذكاء الاصطناعي",
	DraftError: "خطأ في صياغة المقترح",
}
