package i18n

// 文案表，缺失的高棉语文案回退到英语，英语也缺失时返回 key 本身
var catalog = map[string]map[string]string{
	EN: {
		"nav.home":           "Home",
		"nav.about":          "About",
		"nav.research":       "Research",
		"nav.publications":   "Publications",
		"nav.news":           "News",
		"nav.tools":          "Tools",
		"nav.admin":          "Admin",
		"nav.language":       "ខ្មែរ",
		"title.home":         "Climate Research for Cambodia",
		"title.about":        "About Us",
		"title.research":     "Research Projects",
		"title.publications": "Publications",
		"title.news":         "News & Events",
		"title.tools":        "Research Tools",
		"title.dashboard":    "Climate Dashboard",
		"title.guidelines":   "Usage Guidelines",
		"title.admin":        "Admin Panel",
		"title.notFound":     "Page Not Found",
		"common.search":      "Search",
		"common.all":         "All",
		"common.noResults":   "No results match your filters.",
		"common.readMore":    "Read more",
		"footer.rights":      "All rights reserved.",
	},
	KM: {
		"nav.home":           "ទំព័រដើម",
		"nav.about":          "អំពីយើង",
		"nav.research":       "ការស្រាវជ្រាវ",
		"nav.publications":   "ការបោះពុម្ពផ្សាយ",
		"nav.news":           "ព័ត៌មាន",
		"nav.tools":          "ឧបករណ៍",
		"nav.admin":          "អ្នកគ្រប់គ្រង",
		"nav.language":       "English",
		"title.home":         "ការស្រាវជ្រាវអាកាសធាតុសម្រាប់កម្ពុជា",
		"title.about":        "អំពីយើង",
		"title.research":     "គម្រោងស្រាវជ្រាវ",
		"title.publications": "ការបោះពុម្ពផ្សាយ",
		"title.news":         "ព័ត៌មាន និងព្រឹត្តិការណ៍",
		"title.tools":        "ឧបករណ៍ស្រាវជ្រាវ",
		"common.search":      "ស្វែងរក",
		"common.all":         "ទាំងអស់",
		"common.noResults":   "មិនមានលទ្ធផលត្រូវនឹងការស្វែងរករបស់អ្នកទេ។",
		"common.readMore":    "អានបន្ថែម",
	},
}

// T 获取指定语言的文案
func T(locale, key string) string {
	if msg, ok := catalog[locale][key]; ok {
		return msg
	}
	if msg, ok := catalog[EN][key]; ok {
		return msg
	}
	return key
}

// Other 语言切换目标
func Other(locale string) string {
	if locale == KM {
		return EN
	}
	return KM
}
