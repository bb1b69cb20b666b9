package email

import (
	"bytes"
	"html/template"
)

var consultationTmpl = template.Must(template.New("consultation").Parse(`
<h2>New consultation booking</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Phone:</b> {{.Phone}}</p>
<p><b>Property type:</b> {{.PropertyType}}</p>
{{if .Budget}}<p><b>Budget:</b> {{.Budget}}</p>{{end}}
{{if .Location}}<p><b>Location:</b> {{.Location}}</p>{{end}}
`))

var enquiryTmpl = template.Must(template.New("enquiry").Parse(`
<h2>New enquiry for {{.ProjectName}}</h2>
<p><b>Name:</b> {{.Name}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Phone:</b> {{.Phone}}</p>
<p><b>Message:</b> {{.Message}}</p>
`))

type ConsultationNotification struct {
	Name         string
	Email        string
	Phone        string
	PropertyType string
	Budget       string
	Location     string
}

type EnquiryNotification struct {
	ProjectName string
	Name        string
	Email       string
	Phone       string
	Message     string
}

func (s *Service) SendConsultationNotification(data ConsultationNotification) error {
	if s == nil {
		return nil
	}
	var body bytes.Buffer
	if err := consultationTmpl.Execute(&body, data); err != nil {
		return err
	}
	return s.send("New Consultation Booking", body.String())
}

func (s *Service) SendEnquiryNotification(data EnquiryNotification) error {
	if s == nil {
		return nil
	}
	var body bytes.Buffer
	if err := enquiryTmpl.Execute(&body, data); err != nil {
		return err
	}
	return s.send("New Project Enquiry", body.String())
}
