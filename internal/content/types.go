package content

import "strings"

// Site holds document-level metadata shown in the banner and the page head.
type Site struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// User is the person the hero section greets.
type User struct {
	FirstName string `json:"first_name" validate:"required"`
}

// Hero holds the illustration shown beside the quick links.
type Hero struct {
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	ImageAlt string `json:"image_alt"`
}

// QuickLink is a labeled shortcut tile.
type QuickLink struct {
	ID    int    `json:"id" validate:"gt=0"`
	Title string `json:"title" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
	Href  string `json:"href" validate:"required"`
}

// Alert is a one-line announcement. Only the first alert is ever displayed.
type Alert struct {
	ID      int    `json:"id" validate:"gt=0"`
	Message string `json:"message" validate:"required"`
}

// AIHubItem is a catalogue entry for one AI-assisted tool.
// Status is an open-ended label (Live, Beta, Stable, ...), not an enum.
type AIHubItem struct {
	ID          int         `json:"id" validate:"gt=0"`
	Name        string      `json:"name" validate:"required"`
	Description Description `json:"description" validate:"-"`
	Status      string      `json:"status" validate:"required"`
	Gradient    string      `json:"gradient" validate:"required"`
}

// HelpItem is one entry of the help and support menu.
type HelpItem struct {
	ID    int    `json:"id" validate:"gt=0"`
	Title string `json:"title" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
}

// Content is an immutable snapshot of everything the dashboard renders.
// Ids must be unique within each list.
type Content struct {
	Site       Site        `json:"site"`
	User       User        `json:"user"`
	Hero       Hero        `json:"hero"`
	QuickLinks []QuickLink `json:"quick_links" validate:"unique=ID,dive"`
	Alerts     []Alert     `json:"alerts" validate:"unique=ID,dive"`
	AIHub      []AIHubItem `json:"ai_hub" validate:"unique=ID,dive"`
	Help       []HelpItem  `json:"help" validate:"unique=ID,dive"`
}

// Statuses returns the distinct AI Hub status labels in catalogue order.
// Labels that differ only in case count as one; the first spelling wins.
func (c *Content) Statuses() []string {
	seen := make(map[string]bool, len(c.AIHub))
	var out []string
	for _, item := range c.AIHub {
		key := strings.ToLower(item.Status)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item.Status)
	}
	return out
}
