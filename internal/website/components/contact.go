package components

import (
	"fmt"
	"html"
	"strings"

	"github.com/mediaonstake/agencysite/internal/content"
	"github.com/mediaonstake/agencysite/internal/website"
	"github.com/mediaonstake/agencysite/pkg/wizard"
)

// RenderContactWizard generates the current step of the contact form.
func RenderContactWizard(s *content.Site, st wizard.State) string {
	switch st.Step {
	case wizard.StepSuccess:
		return renderWizardSuccess()
	case wizard.StepDetailing:
		return renderWizardDetails(st)
	default:
		return renderWizardOptions(s)
	}
}

func renderWizardOptions(s *content.Site) string {
	var sb strings.Builder
	sb.WriteString(`<div class="glass wizard">`)
	fmt.Fprintf(&sb, `<h3 style="margin-bottom:1.5rem">%s</h3>`, html.EscapeString(s.Contact.Question))
	for _, opt := range s.Contact.Options {
		fmt.Fprintf(&sb, `<button class="option" %s><span>%s</span><span aria-hidden="true">&#8594;</span></button>`,
			website.Event("contact:select", opt), html.EscapeString(opt))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

type formInput struct {
	field       wizard.Field
	label       string
	kind        string
	placeholder string
}

var detailInputs = []formInput{
	{wizard.FieldName, "Full Name *", "text", "John Doe"},
	{wizard.FieldEmail, "Email Address *", "email", "john@company.com"},
	{wizard.FieldCompany, "Company Name", "text", "Your Company"},
	{wizard.FieldMessage, "Project Details", "textarea", "Tell us about your project, goals, timeline..."},
}

func renderWizardDetails(st wizard.State) string {
	var sb strings.Builder
	sb.WriteString(`<form class="glass wizard" data-submit="contact:submit" novalidate>`)
	sb.WriteString(`<h3>Almost done! Just a few details</h3>`)
	sb.WriteString(`<p style="margin-bottom:1.5rem">We'll use this information to prepare for our call</p>`)

	fmt.Fprintf(&sb, `<div class="summary-box"><small class="muted">Service</small><p style="color:var(--color-text)">%s</p></div>`,
		html.EscapeString(st.Fields.Service))

	sb.WriteString(`<div class="grid grid-2">`)
	for _, in := range detailInputs {
		if in.kind == "textarea" {
			continue
		}
		sb.WriteString(renderInput(in, st.Fields.Get(in.field)))
	}
	sb.WriteString(`</div>`)
	for _, in := range detailInputs {
		if in.kind == "textarea" {
			sb.WriteString(renderInput(in, st.Fields.Get(in.field)))
		}
	}

	sb.WriteString(`<div class="hint"><b>WhatsApp Submission</b><br>After clicking "Send via WhatsApp", you'll be redirected to WhatsApp with your message pre-filled. Just hit send!</div>`)

	sb.WriteString(`<div class="row between">`)
	fmt.Fprintf(&sb, `<button type="button" class="btn btn-outline" %s>Back</button>`, website.Event("contact:back", nil))
	if st.Submitting {
		sb.WriteString(`<button type="submit" class="btn btn-primary" disabled><span class="spinner" style="width:1rem;height:1rem"></span>Preparing WhatsApp...</button>`)
	} else {
		sb.WriteString(`<button type="submit" class="btn btn-primary">Send via WhatsApp</button>`)
	}
	sb.WriteString(`</div></form>`)
	return sb.String()
}

func renderInput(in formInput, value string) string {
	id := "contact-" + string(in.field)
	var sb strings.Builder
	fmt.Fprintf(&sb, `<div class="field"><label for="%s">%s</label>`, id, html.EscapeString(in.label))
	if in.kind == "textarea" {
		fmt.Fprintf(&sb, `<textarea id="%s" name="%s" rows="4" placeholder="%s" data-input="contact:input">%s</textarea>`,
			id, in.field, html.EscapeString(in.placeholder), html.EscapeString(value))
	} else {
		fmt.Fprintf(&sb, `<input id="%s" name="%s" type="%s" placeholder="%s" value="%s" data-input="contact:input">`,
			id, in.field, in.kind, html.EscapeString(in.placeholder), html.EscapeString(value))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func renderWizardSuccess() string {
	var sb strings.Builder
	sb.WriteString(`<div class="glass wizard success">`)
	sb.WriteString(`<div class="check" aria-hidden="true">&#10003;</div>`)
	sb.WriteString(`<h3>Message Ready!</h3>`)
	sb.WriteString(`<p style="margin:1rem 0 1.5rem">Your message has been prepared and WhatsApp should have opened. If not, click the button below to open WhatsApp manually.</p>`)
	sb.WriteString(`<div class="row" style="justify-content:center;flex-wrap:wrap">`)
	fmt.Fprintf(&sb, `<button class="btn btn-primary" %s>Open WhatsApp Again</button>`, website.Event("contact:reopen", nil))
	fmt.Fprintf(&sb, `<button class="btn btn-outline" %s>Send New Message</button>`, website.Event("contact:reset", nil))
	sb.WriteString(`</div></div>`)
	return sb.String()
}

// RenderContactInfo generates the direct contact links, office details and
// map embed beside the form.
func RenderContactInfo(s *content.Site, chatLink string) string {
	c := s.Contact
	var sb strings.Builder

	sb.WriteString(`<div>`)
	sb.WriteString(`<div class="glass wizard" style="margin-bottom:1.5rem"><h4 style="margin-bottom:1rem">Prefer to talk directly?</h4>`)
	fmt.Fprintf(&sb, `<a class="contact-link" href="tel:%s"><span>&#9742;</span><span>%s<br><small class="muted">Call us anytime</small></span></a>`,
		html.EscapeString(c.Phone), html.EscapeString(c.PhoneDisplay))
	fmt.Fprintf(&sb, `<a class="contact-link" href="%s" target="_blank" rel="noopener noreferrer"><span>&#9993;</span><span>WhatsApp Us Directly<br><small class="muted">Quick response guaranteed</small></span></a>`,
		html.EscapeString(chatLink))
	fmt.Fprintf(&sb, `<a class="contact-link" href="mailto:%s"><span>@</span><span>%s<br><small class="muted">Email us anytime</small></span></a>`,
		html.EscapeString(c.Email), html.EscapeString(c.Email))
	sb.WriteString(`</div>`)

	sb.WriteString(`<div class="glass wizard"><h4 style="margin-bottom:1rem">Our Office</h4>`)
	fmt.Fprintf(&sb, `<p style="color:var(--color-text)">%s</p><p>%s</p>`, html.EscapeString(c.Office), html.EscapeString(c.Region))
	if c.Hours != "" {
		fmt.Fprintf(&sb, `<p style="margin-top:.75rem">%s</p>`, html.EscapeString(c.Hours))
	}
	if c.MapURL != "" {
		fmt.Fprintf(&sb, `<iframe class="map" style="margin-top:1rem" src="%s" title="Office location" loading="lazy" referrerpolicy="no-referrer-when-downgrade" allowfullscreen></iframe>`,
			html.EscapeString(c.MapURL))
	}
	sb.WriteString(`</div></div>`)
	return sb.String()
}
