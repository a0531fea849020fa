package email

// PreviewData holds sample values per template for rendering previews.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Name":      "Asha Rao",
		"Role":      "customer",
		"Dashboard": "/buyer-dashboard",
	},
}
