// internal/email/welcome.go
package email

import "html/template"

const welcomeHTML = `<html>
<body>
  <p>Hi {{.Name}},</p>
  <p>Your workspace is ready. We set you up with a sample territory so you can
  explore accounts, contacts and call notes right away.</p>
  <p><a href="{{.WorkspaceURL}}">Open your workspace</a></p>
  <p>The Territory team</p>
</body>
</html>`

const welcomeText = `Hi {{.Name}},

Your workspace is ready. We set you up with a sample territory so you can
explore accounts, contacts and call notes right away.

Open your workspace: {{.WorkspaceURL}}

The Territory team`

func loadTemplates() map[string]*tmplPair {
	return map[string]*tmplPair{
		"welcome": {
			html:      template.Must(template.New("welcome_html").Parse(welcomeHTML)),
			plaintext: template.Must(template.New("welcome_text").Parse(welcomeText)),
		},
	}
}

type welcomeData struct {
	Name         string
	WorkspaceURL string
}

// SendWelcomeEmail greets a freshly bootstrapped user.
func SendWelcomeEmail(s *Service, to, name, workspaceURL string) error {
	return s.Send(Data{
		To:           to,
		FromName:     "Territory",
		Subject:      "Your workspace is ready",
		TemplateName: "welcome",
		TemplateData: welcomeData{Name: name, WorkspaceURL: workspaceURL},
	})
}
