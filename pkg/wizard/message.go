package wizard

import (
	"net/url"
	"strings"
)

// Field names a form input.
type Field string

const (
	FieldService Field = "service"
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldCompany Field = "company"
	FieldMessage Field = "message"
)

// ParseField maps an input name to a Field.
func ParseField(name string) (Field, bool) {
	switch f := Field(name); f {
	case FieldService, FieldName, FieldEmail, FieldCompany, FieldMessage:
		return f, true
	default:
		return "", false
	}
}

// Fields holds the collected form values.
type Fields struct {
	Service string
	Name    string
	Email   string
	Company string
	Message string
}

// Get returns the value stored under f.
func (fs Fields) Get(f Field) string {
	switch f {
	case FieldService:
		return fs.Service
	case FieldName:
		return fs.Name
	case FieldEmail:
		return fs.Email
	case FieldCompany:
		return fs.Company
	case FieldMessage:
		return fs.Message
	default:
		return ""
	}
}

func (fs *Fields) set(f Field, v string) bool {
	switch f {
	case FieldService:
		fs.Service = v
	case FieldName:
		fs.Name = v
	case FieldEmail:
		fs.Email = v
	case FieldCompany:
		fs.Company = v
	case FieldMessage:
		fs.Message = v
	default:
		return false
	}
	return true
}

// Map returns the values keyed by field name.
func (fs Fields) Map() map[string]string {
	return map[string]string{
		string(FieldService): fs.Service,
		string(FieldName):    fs.Name,
		string(FieldEmail):   fs.Email,
		string(FieldCompany): fs.Company,
		string(FieldMessage): fs.Message,
	}
}

// FormatMessage renders the WhatsApp message for fs.
func FormatMessage(fs Fields) string {
	var b strings.Builder
	b.WriteString("*New Contact Form Submission*\n\n")
	line := func(label, value string) {
		b.WriteString("*")
		b.WriteString(label)
		b.WriteString(":* ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	line("Service", fs.Service)
	line("Name", fs.Name)
	line("Email", fs.Email)
	line("Company", fs.Company)
	line("Project Details", fs.Message)
	b.WriteString("\n*Submitted via Website Contact Form*")
	return strings.TrimSpace(b.String())
}

// componentUnescape restores the marks a browser's encodeURIComponent keeps
// as-is. QueryEscape has already turned a literal '+' into %2B, so any '+'
// left is a space.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for a query value the way a browser's
// encodeURIComponent does. Spaces become %20.
func EncodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

// DeepLink builds base/recipient?text=<message>.
func DeepLink(base, recipient, message string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(recipient) + "?text=" + EncodeComponent(message)
}

// ChatLink builds base/recipient, a chat with no pre-filled text.
func ChatLink(base, recipient string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(recipient)
}
