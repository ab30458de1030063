package vision

import (
	"bytes"
	"fmt"
	"text/template"
)

// systemMsg frames the model as a philatelic cataloger.
const systemMsg = `You are an expert philatelic and deltiological cataloger. ` +
	`You identify postcards and stamps from photographs for eBay listings.`

// cardTmpl is the detail extraction prompt template.
const cardTmpl = `Examine this photograph of a {{.Family}} and extract listing details.
Respond ONLY with a JSON object matching the schema below.
If a field cannot be determined from the image, use null.

Schema:
{
  "country": string (country of origin as printed or inferred, e.g. "Romania") | null,
  "year": string (year or era, e.g. "1935" or "1930s") | null,
  "condition": string (collector grade, e.g. "used", "postally used", "MNH", "unused") | null,
  "title": string (a concise eBay listing title, at most 80 characters),
  "description": string (2-3 sentences describing subject, era, and visible flaws),
  "subjects": [string] (depicted subjects, e.g. "cathedral", "street scene"),
  "confidence": float (0.0-1.0)
}`

type cardPromptData struct {
	Family string
}

var cardPrompt = template.Must(template.New("card").Parse(cardTmpl))

// RenderCardPrompt renders the extraction prompt for the given item
// family ("postcard" or "stamp").
func RenderCardPrompt(family string) (string, error) {
	var buf bytes.Buffer
	if err := cardPrompt.Execute(&buf, cardPromptData{Family: family}); err != nil {
		return "", fmt.Errorf("rendering card prompt: %w", err)
	}
	return buf.String(), nil
}
