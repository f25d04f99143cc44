package i18n

var messages = map[Language]map[string]string{
	English: {
		"step.select_engagement": "Engagement Type",
		"step.configure":         "Configuration",
		"step.contact_info":      "Contact Info",
		"step.complete":          "Your Quote",

		"quote.title":        "Quotation",
		"quote.number":       "Quote #",
		"quote.date":         "Date",
		"quote.valid_until":  "Valid Until",
		"quote.prepared_for": "Prepared For",
		"quote.project":      "Project",
		"quote.description":  "Description",
		"quote.quantity":     "Qty",
		"quote.rate":         "Rate",
		"quote.total":        "Total",
		"quote.grand_total":  "Grand Total",
		"quote.notes":        "Notes",
		"quote.notes_body":   "This quotation is valid for %d days from the date of issue. Prices are in %s.",

		"engagement.Project":  "Project",
		"engagement.Retainer": "Retainer",
		"engagement.Training": "Training & Workshops",

		"validation.required":               "This field is required.",
		"validation.invalid_format":         "Please check the format of this field.",
		"validation.out_of_range":           "The value is out of range.",
		"validation.unknown_option":         "Please choose one of the available options.",
		"validation.name.required":          "Full name is required.",
		"validation.email.required":         "Email address is required.",
		"validation.email.invalid_format":   "Please enter a valid email address.",
		"validation.phone.required":         "Phone number is required.",
		"validation.engagement.required":    "Please select an engagement type.",
		"validation.configuration.required": "Please configure your service.",
		"validation.hours.invalid_format":   "Hours must be in steps of 5.",

		"validation.start_date.invalid_format": "Start date must be in YYYY-MM-DD format.",

		"error.session_not_found":  "Quote session not found or expired.",
		"error.wrong_step":         "This action is not available at the current step.",
		"error.validation":         "Some fields need your attention.",
		"error.quote_not_ready":    "The quote is not ready yet.",
		"error.submission_failed":  "We could not send your request. Please try again.",
		"error.quote_number_taken": "This quote number is already in use. Please restart the quote.",
	},
	Arabic: {
		"step.select_engagement": "نوع التعاون",
		"step.configure":         "الإعدادات",
		"step.contact_info":      "معلومات الاتصال",
		"step.complete":          "عرض السعر",

		"quote.title":        "عرض سعر",
		"quote.number":       "رقم العرض",
		"quote.date":         "التاريخ",
		"quote.valid_until":  "صالح حتى",
		"quote.prepared_for": "مقدم إلى",
		"quote.project":      "المشروع",
		"quote.description":  "الوصف",
		"quote.quantity":     "الكمية",
		"quote.rate":         "السعر",
		"quote.total":        "المجموع",
		"quote.grand_total":  "الإجمالي",
		"quote.notes":        "ملاحظات",
		"quote.notes_body":   "هذا العرض صالح لمدة %d يومًا من تاريخ الإصدار. الأسعار بعملة %s.",

		"engagement.Project":  "مشروع",
		"engagement.Retainer": "عقد شهري",
		"engagement.Training": "التدريب وورش العمل",

		"validation.required":               "هذا الحقل مطلوب.",
		"validation.invalid_format":         "يرجى التحقق من صيغة هذا الحقل.",
		"validation.out_of_range":           "القيمة خارج النطاق المسموح.",
		"validation.unknown_option":         "يرجى اختيار أحد الخيارات المتاحة.",
		"validation.name.required":          "الاسم الكامل مطلوب.",
		"validation.email.required":         "البريد الإلكتروني مطلوب.",
		"validation.email.invalid_format":   "يرجى إدخال بريد إلكتروني صالح.",
		"validation.phone.required":         "رقم الهاتف مطلوب.",
		"validation.engagement.required":    "يرجى اختيار نوع التعاون.",
		"validation.configuration.required": "يرجى إعداد الخدمة.",

		"error.session_not_found":  "جلسة عرض السعر غير موجودة أو منتهية.",
		"error.validation":         "بعض الحقول تحتاج إلى مراجعة.",
		"error.submission_failed":  "تعذر إرسال طلبك. يرجى المحاولة مرة أخرى.",
		"error.wrong_step":         "هذا الإجراء غير متاح في الخطوة الحالية.",
		"error.quote_not_ready":    "عرض السعر غير جاهز بعد.",
		"error.quote_number_taken": "رقم عرض السعر مستخدم بالفعل. يرجى إعادة البدء.",
	},
}
