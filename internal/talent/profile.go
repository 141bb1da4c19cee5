package talent

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Profile describes a learning-and-development professional as submitted by
// the marketplace. All text fields are free-form.
type Profile struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	Bio             string   `json:"bio"`
	IndustryFocus   string   `json:"industry_focus"`
	Location        string   `json:"location"`
	YearsExperience int      `json:"years_experience"`
	Interests       []string `json:"interests,omitempty"`
}

// Empty reports whether the profile carries no usable text at all.
func (p *Profile) Empty() bool {
	if p == nil {
		return true
	}
	return strings.TrimSpace(p.Title) == "" &&
		strings.TrimSpace(p.Bio) == "" &&
		strings.TrimSpace(p.IndustryFocus) == ""
}

// FreeText concatenates every descriptive field of the profile. The regional
// analyzers match keywords against this blob.
func (p *Profile) FreeText() string {
	if p == nil {
		return ""
	}

	parts := []string{p.Title, p.Bio, p.IndustryFocus, p.Location}
	parts = append(parts, p.Interests...)

	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			nonEmpty = append(nonEmpty, part)
		}
	}

	return strings.Join(nonEmpty, "\n")
}

// Display returns a short human-readable label for prompts and logs.
func (p *Profile) Display() string {
	if p == nil {
		return ""
	}

	title := strings.TrimSpace(p.Title)
	if title == "" {
		title = "untitled profile"
	}

	if loc := strings.TrimSpace(p.Location); loc != "" {
		return fmt.Sprintf("%s / %s", title, loc)
	}

	return title
}

// LoadProfiles reads one or many profiles from a JSON file. The file may
// contain a single object or an array.
func LoadProfiles(path string) ([]*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles from %q: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var profiles []*Profile
		if err := json.Unmarshal(data, &profiles); err != nil {
			return nil, fmt.Errorf("parsing profiles from %q: %w", path, err)
		}
		return profiles, nil
	}

	var profile Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile from %q: %w", path, err)
	}

	return []*Profile{&profile}, nil
}
