package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderContactAlertEscapesMarkup(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	out, err := tm.Render(TemplateContactAlert, ContactAlertData{
		Name:       "Mallory",
		Email:      "m@example.com",
		Subject:    "<script>alert(1)</script>",
		Message:    "line one\n<b>line two</b>",
		ReceivedAt: "2026-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<b>line two</b>")
	assert.Contains(t, out, "line one<br>&lt;b&gt;line two&lt;/b&gt;")
}

func TestRenderUploadConfirmation(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	out, err := tm.Render(TemplateUploadConfirmation, UploadConfirmationData{
		ProjectName: "Demo",
		FileCount:   2,
		TotalSize:   "7.00 MB",
		UploadTime:  "2026-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Contains(t, out, "Demo")
	assert.Contains(t, out, "7.00 MB")
}

func TestRenderUnknownTemplate(t *testing.T) {
	tm, err := NewTemplateManager()
	require.NoError(t, err)

	_, err = tm.Render("missing", nil)
	assert.Error(t, err)
}

func TestNl2brPreservesBreaks(t *testing.T) {
	got := nl2br("a\nb\nc")
	assert.Equal(t, "a<br>b<br>c", string(got))
}
