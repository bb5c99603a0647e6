package chat

import (
	"context"
	"fmt"
	"strings"
)

const classifyPrompt = `Categorise the message into one of the following two types and return only the category number of the message.
1. It is a request for a colour analysis from the given colours.
2. It is a request to find products of a type and colour.
If you need more information about the message, then categorise it into type 1.
Message: %s`

// classify maps a message to an intent category. The service is instructed to
// answer "1" or "2"; anything that is not exactly "2" after trimming falls
// back to colour analysis, matching the prompt's own default bias.
func (s *Service) classify(ctx context.Context, message string) (IntentCategory, error) {
	out, err := s.Gen.Generate(ctx, fmt.Sprintf(classifyPrompt, message))
	if err != nil {
		return IntentColorAnalysis, err
	}
	if strings.TrimSpace(out) == "2" {
		return IntentProductSearch, nil
	}
	return IntentColorAnalysis, nil
}
