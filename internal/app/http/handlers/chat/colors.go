package chat

import (
	"context"
	"fmt"
	"regexp"
)

const colorAnalysisPrompt = `Welcome to the Seasonal Color Analysis System! Please provide three hex codes of colors that you feel best represent your natural coloring (e.g., your hair, eyes, and skin tone). Based on these hex codes, we will categorize you into one of the twelve established color seasons. These seasons take into account your warmth or coolness, saturation or brightness, and value (dark or light). Here's how it works:

Warm vs. Cool:

Warm seasons: Spring and Autumn
Cool seasons: Summer and Winter
Saturation/Brightness:

Bright seasons: Winter and Spring
Soft seasons: Summer and Autumn
Value:

Light seasons: Spring and Summer
Deep seasons: Autumn and Winter
Based on the hex codes you provide, we will identify your dominant season and suggest a palette of colors that complement your natural coloring. Here are the twelve color seasons and examples of their palettes:

Bright Winter: #FF0000 (Red), #FFFFFF (White), #0000FF (Blue)
True Winter: #0066CC (Blue), #FF00FF (Magenta), #333333 (Dark Grey)
Deep Winter: #660000 (Deep Red), #000033 (Navy), #330066 (Deep Purple)
Bright Spring: #FF9900 (Bright Orange), #FFFF33 (Bright Yellow), #00FF00 (Bright Green)
True Spring: #FFCC00 (Golden Yellow), #FF6666 (Coral), #33CC33 (Grass Green)
Light Spring: #FFFFCC (Light Yellow), #FFCCCC (Light Coral), #CCFFCC (Light Green)
Light Summer: #CCFFFF (Light Blue), #FFCCCC (Light Pink), #CCCCFF (Lavender)
True Summer: #66CCCC (Teal), #FF99CC (Soft Pink), #6699FF (Sky Blue)
Soft Summer: #999999 (Grey), #CC9999 (Dusty Pink), #99CCCC (Soft Teal)
Soft Autumn: #996633 (Brown), #CC9966 (Soft Brown), #669966 (Olive)
True Autumn: #CC3300 (Rust), #996600 (Mustard), #663300 (Dark Brown)
Deep Autumn: #660000 (Deep Red), #333300 (Olive Green), #000000 (Black)

The colours of the person are %s

Return the color season, the best looking colours on them and the colours they should avoid.
If you need more information, tell the user to provide more information and what information.`

// analyzeColors runs the colour analysis prompt and converts the raw response
// to renderable markup. Service errors propagate to the orchestrator.
func (s *Service) analyzeColors(ctx context.Context, message string) (string, error) {
	out, err := s.Gen.Generate(ctx, fmt.Sprintf(colorAnalysisPrompt, message))
	if err != nil {
		return "", err
	}
	return formatAnalysis(out), nil
}

var (
	reBulletBold = regexp.MustCompile(`\*\s\*\*(.*?)\*\*\s`)
	reBold       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reStar       = regexp.MustCompile(`\*(.*?)\*`)
	reHex        = regexp.MustCompile(`#[0-9a-fA-F]{6}`)
)

// formatAnalysis applies the text-to-markup transform. Order matters: bold
// pairs must be resolved before single asterisks, and hex colouring runs last
// so it also hits hex codes inside already-bolded segments.
func formatAnalysis(text string) string {
	out := reBulletBold.ReplaceAllString(text, "<br /><strong>${1}</strong>")
	out = reBold.ReplaceAllString(out, "<strong>${1}</strong>")
	out = reStar.ReplaceAllString(out, "<br />${1}")
	out = reHex.ReplaceAllString(out, `<span style="color: ${0};"><b>${0}</b></span>`)
	return out
}
