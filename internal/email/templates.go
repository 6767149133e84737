package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template data for the two transactional emails.
type submissionData struct {
	Name string
}

type approvalData struct {
	Name       string
	ProfileURL string
}

const submissionSubject = "Thank you for submitting your profile!"

const submissionHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Thank you for submitting your profile!</h2>
  <p>Hi {{.Name}},</p>
  <p>Thank you for submitting your profile to CoFounder Base. We've received your submission and our team will review it shortly.</p>
  <p>We'll notify you once your profile is live on our platform.</p>
  <p>Best regards,<br>The CoFounder Base Team</p>
</div>
`

const submissionText = `Hi %s,

Thank you for submitting your profile to CoFounder Base. We've received your submission and our team will review it shortly.

We'll notify you once your profile is live on our platform.

Best regards,
The CoFounder Base Team`

const approvalSubject = "Your profile is now live on CoFounder Base!"

const approvalHTML = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">Your profile is now live!</h2>
  <p>Hi {{.Name}},</p>
  <p>Great news! Your profile has been approved and is now live on CoFounder Base.</p>
  <p>You can view your profile here: <a href="{{.ProfileURL}}" style="color: #007bff;">{{.ProfileURL}}</a></p>
  <p>Start connecting with potential co-founders and grow your network!</p>
  <p>Best regards,<br>The CoFounder Base Team</p>
</div>
`

const approvalText = `Hi %s,

Great news! Your profile has been approved and is now live on CoFounder Base.

You can view your profile here: %s

Start connecting with potential co-founders and grow your network!

Best regards,
The CoFounder Base Team`

var (
	submissionTmpl = template.Must(template.New("submission").Parse(submissionHTML))
	approvalTmpl   = template.Must(template.New("approval").Parse(approvalHTML))
)

func renderSubmission(name string) (htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := submissionTmpl.Execute(&buf, submissionData{Name: name}); err != nil {
		return "", "", err
	}
	return buf.String(), fmt.Sprintf(submissionText, name), nil
}

func renderApproval(name, profileURL string) (htmlBody, textBody string, err error) {
	var buf bytes.Buffer
	if err := approvalTmpl.Execute(&buf, approvalData{Name: name, ProfileURL: profileURL}); err != nil {
		return "", "", err
	}
	return buf.String(), fmt.Sprintf(approvalText, name, profileURL), nil
}
