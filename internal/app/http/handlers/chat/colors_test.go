package chat

import "testing"

func TestFormatAnalysisBulletBoldAndHex(t *testing.T) {
	in := "* **Deep Winter** Best colors: #660000 avoid #FFFF33"
	want := `<br /><strong>Deep Winter</strong>Best colors: ` +
		`<span style="color: #660000;"><b>#660000</b></span> avoid ` +
		`<span style="color: #FFFF33;"><b>#FFFF33</b></span>`
	if got := formatAnalysis(in); got != want {
		t.Errorf("formatAnalysis:\n got  %q\n want %q", got, want)
	}
}

func TestFormatAnalysisBoldBeforeSingleStar(t *testing.T) {
	in := "**Bold** and *note*"
	want := "<strong>Bold</strong> and <br />note"
	if got := formatAnalysis(in); got != want {
		t.Errorf("formatAnalysis: got %q want %q", got, want)
	}
}

func TestFormatAnalysisHexInsideBold(t *testing.T) {
	in := "**#FF0000**"
	want := `<strong><span style="color: #FF0000;"><b>#FF0000</b></span></strong>`
	if got := formatAnalysis(in); got != want {
		t.Errorf("formatAnalysis: got %q want %q", got, want)
	}
}

func TestFormatAnalysisIgnoresNonHexTokens(t *testing.T) {
	in := "hashtag #GGGGGG stays"
	if got := formatAnalysis(in); got != in {
		t.Errorf("formatAnalysis: got %q want input unchanged", got)
	}
}

func TestFormatAnalysisPlainTextUnchanged(t *testing.T) {
	in := "You are a True Summer."
	if got := formatAnalysis(in); got != in {
		t.Errorf("formatAnalysis: got %q want input unchanged", got)
	}
}
