package email

// Template names a file under templates/, without the extension.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

func (t Template) file() string {
	return string(t) + ".html"
}
