package chat

type ChatRequest struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message"`
}

type ChatResponse struct {
	ConversationID string  `json:"conversation_id"`
	Message        Message `json:"message"`
}

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry in a conversation. Products is always non-nil in
// responses so clients never have to null-check it.
type Message struct {
	ID       int       `json:"id"`
	Sender   Sender    `json:"sender"`
	Content  string    `json:"content"`
	Products []Product `json:"products"`
}

type Product struct {
	Brand string `json:"brand"`
	Price string `json:"price"`
	Link  string `json:"link"`
	Image string `json:"image"`
}

type IntentCategory int

const (
	IntentColorAnalysis IntentCategory = iota + 1
	IntentProductSearch
)

func (c IntentCategory) String() string {
	switch c {
	case IntentColorAnalysis:
		return "color_analysis"
	case IntentProductSearch:
		return "product_search"
	default:
		return "unknown"
	}
}

// ProductQuery fields are always present as text, possibly empty, never null.
// The extractor normalizes missing values so downstream code never branches
// on absence.
type ProductQuery struct {
	Color   string `json:"color"`
	Product string `json:"product"`
	Gender  string `json:"gender"`
}

type scriptRequest struct {
	Args []string `json:"args"`
}

type catalogEntry struct {
	Product string `json:"Product"`
	Brand   string `json:"Brand"`
	Price   string `json:"Price"`
	Link    string `json:"Link"`
	Image   string `json:"Image"`
}
