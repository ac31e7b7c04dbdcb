package content_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/nfrund/asidash/internal/content"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "site": {"title": "Test Dashboard", "description": "for tests"},
  "user": {"first_name": "Ada"},
  "hero": {"image_url": "https://example.com/hero.png", "image_alt": "hero"},
  "quick_links": [
    {"id": 1, "title": "Open Tickets", "icon": "🎫", "href": "/tickets"},
    {"id": 2, "title": "Timesheets", "icon": "⏱️", "href": "/time"}
  ],
  "alerts": [],
  "ai_hub": [
    {"id": 1, "name": "Assistant", "description": "Plain words.", "status": "Live", "gradient": "from-a to-b"},
    {"id": 2, "name": "Toolbox", "description": {"lead": "Handy:", "items": ["One", "Two"]}, "status": "Beta", "gradient": "from-c to-d"}
  ],
  "help": [
    {"id": 1, "title": "Contact Support", "icon": "💬"}
  ]
}`

func renderNode(t *testing.T, d content.Description) string {
	t.Helper()
	require.NotNil(t, d.Node())
	var sb strings.Builder
	require.NoError(t, d.Node().Render(&sb))
	return sb.String()
}

func TestDefault_IsValid(t *testing.T) {
	c := content.Default()

	require.NoError(t, c.Validate())
	assert.Len(t, c.QuickLinks, 5)
	assert.Len(t, c.Alerts, 1)
	assert.Len(t, c.AIHub, 5)
	assert.Len(t, c.Help, 3)
	assert.Equal(t, []string{"Live", "Beta", "Stable", "Alpha", "Bundle"}, c.Statuses())
}

func TestStatuses_FoldsCase(t *testing.T) {
	c := &content.Content{AIHub: []content.AIHubItem{
		{ID: 1, Status: "Live"},
		{ID: 2, Status: "beta"},
		{ID: 3, Status: "live"},
		{ID: 4, Status: "LIVE"},
	}}
	assert.Equal(t, []string{"Live", "beta"}, c.Statuses())
}

func TestDefault_DescriptionVariants(t *testing.T) {
	c := content.Default()

	assert.Equal(t, content.KindRichContent, c.AIHub[0].Description.Kind())
	assert.True(t, c.AIHub[1].Description.IsPlainText())
	assert.Equal(t, "Searchable knowledge base auto‑curated from ASI docs and data.", c.AIHub[1].Description.Text())

	html := renderNode(t, c.AIHub[4].Description)
	assert.True(t, strings.HasPrefix(html, `<ul class="list-disc list-inside text-sm space-y-1">`), html)
	assert.Equal(t, 4, strings.Count(html, "<li>"))
}

func TestValidate_RejectsDuplicateIDs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *content.Content)
	}{
		{"quick links", func(c *content.Content) { c.QuickLinks[1].ID = c.QuickLinks[0].ID }},
		{"ai hub", func(c *content.Content) { c.AIHub[2].ID = c.AIHub[3].ID }},
		{"help", func(c *content.Content) { c.Help[2].ID = 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := content.Default()
			tt.mutate(c)

			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, content.ErrInvalidContent))
		})
	}
}

func TestValidate_RejectsMissingFields(t *testing.T) {
	c := content.Default()
	c.QuickLinks[0].Href = ""

	assert.ErrorIs(t, c.Validate(), content.ErrInvalidContent)
}

func TestValidate_RejectsEmptyDescription(t *testing.T) {
	c := content.Default()
	c.AIHub[2].Description = content.PlainText("")

	err := c.Validate()
	assert.ErrorIs(t, err, content.ErrInvalidContent)
	assert.ErrorIs(t, err, content.ErrEmptyDescription)
}

func TestParse_DescriptionShapes(t *testing.T) {
	c, err := content.Parse([]byte(sampleJSON))
	require.NoError(t, err)

	plain := c.AIHub[0].Description
	assert.True(t, plain.IsPlainText())
	assert.Equal(t, "Plain words.", plain.Text())
	assert.Nil(t, plain.Node())

	rich := c.AIHub[1].Description
	assert.Equal(t, content.KindRichContent, rich.Kind())
	html := renderNode(t, rich)
	assert.True(t, strings.HasPrefix(html, "Handy:"), html)
	assert.Contains(t, html, `<ul class="list-disc list-inside text-sm mt-2 space-y-1"><li>One</li><li>Two</li></ul>`)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"malformed", `{"site":`},
		{"unknown field", strings.Replace(sampleJSON, `"user"`, `"usr"`, 1)},
		{"bad description", strings.Replace(sampleJSON, `"Plain words."`, `42`, 1)},
		{"unknown field in description", strings.Replace(sampleJSON, `"lead": "Handy:"`, `"lede": "Handy:"`, 1)},
		{"null description", strings.Replace(sampleJSON, `"Plain words."`, `null`, 1)},
		{"duplicate quick link", strings.Replace(sampleJSON, `{"id": 2, "title": "Timesheets"`, `{"id": 1, "title": "Timesheets"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.Parse([]byte(tt.json))
			assert.ErrorIs(t, err, content.ErrInvalidContent)
		})
	}
}

func TestLoad_FromFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "content/home.json", []byte(sampleJSON), 0o644))

	c, err := content.Load(fs, "content/home.json")
	require.NoError(t, err)
	assert.Equal(t, "Ada", c.User.FirstName)
	assert.Empty(t, c.Alerts)

	_, err = content.Load(fs, "content/missing.json")
	assert.Error(t, err)
}
