package resume

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v2"
)

//go:embed profile.yaml
var defaultProfile []byte

type Profile struct {
	Owner     string `yaml:"owner"`
	FirstName string `yaml:"first_name"`
	Email     string `yaml:"email"`
	Resume    string `yaml:"resume"`

	systemPrompt string
}

const systemPromptTemplate = `You are an AI assistant for {{.Owner}}'s portfolio website. Your role is to help visitors learn about {{.FirstName}}'s skills, experience, projects, and qualifications.

Here is {{.FirstName}}'s complete resume information:

{{.Resume}}

Instructions:
1. Answer questions about {{.FirstName}}'s background, skills, projects, education, and experience accurately based on the resume data provided.
2. Be friendly, professional, and helpful.
3. If asked about something not in the resume, politely indicate that you don't have that information.
4. Highlight relevant achievements and skills when appropriate.
5. Keep responses concise but informative.
6. If someone wants to contact {{.FirstName}}, provide this email: {{.Email}}
7. Be enthusiastic about {{.FirstName}}'s work and accomplishments while remaining professional.
8. For technical questions about projects, provide detailed explanations based on the project descriptions.

Remember: You represent {{.FirstName}}'s portfolio, so maintain a professional and positive tone throughout the conversation.`

var promptTmpl = template.Must(template.New("system_prompt").Parse(systemPromptTemplate))

// Default returns the profile compiled into the binary.
func Default() (*Profile, error) {
	return Parse(defaultProfile)
}

// Load reads a profile from path, or returns the embedded one when path is empty.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading profile file %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("error parsing profile: %w", err)
	}

	if strings.TrimSpace(p.Owner) == "" || strings.TrimSpace(p.Resume) == "" {
		return nil, fmt.Errorf("profile must define owner and resume")
	}
	if p.FirstName == "" {
		p.FirstName = strings.Fields(p.Owner)[0]
	}

	var b strings.Builder
	if err := promptTmpl.Execute(&b, &p); err != nil {
		return nil, fmt.Errorf("error rendering system prompt: %w", err)
	}
	p.systemPrompt = b.String()

	return &p, nil
}

// SystemPrompt is identical for every session and carries the full resume.
func (p *Profile) SystemPrompt() string {
	return p.systemPrompt
}

func (p *Profile) ContactAck() string {
	return fmt.Sprintf("Thank you for your message! %s will get back to you soon.", p.FirstName)
}

func (p *Profile) APITitle() string {
	return p.Owner + " Portfolio API"
}
