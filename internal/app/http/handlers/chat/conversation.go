package chat

import (
	"sync"

	"github.com/google/uuid"
)

const greeting = "Hello! How can I assist you today?"

// Conversation holds the session-lifetime message list. Message IDs are
// allocated under the conversation lock, so two racing submissions always get
// distinct placeholder IDs and resolve independently.
type Conversation struct {
	ID string

	mu       sync.Mutex
	nextID   int
	messages []Message
}

func newConversation(id string) *Conversation {
	c := &Conversation{ID: id, nextID: 1}
	c.messages = append(c.messages, Message{
		ID:       c.allocID(),
		Sender:   SenderAssistant,
		Content:  greeting,
		Products: []Product{},
	})
	return c
}

func (c *Conversation) allocID() int {
	id := c.nextID
	c.nextID++
	return id
}

func (c *Conversation) Append(sender Sender, content string, products []Product) Message {
	if products == nil {
		products = []Product{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	msg := Message{ID: c.allocID(), Sender: sender, Content: content, Products: products}
	c.messages = append(c.messages, msg)
	return msg
}

// Resolve replaces the message with the given ID in place, keeping the ID
// stable. Returns the resolved message and whether the ID was found.
func (c *Conversation) Resolve(id int, content string, products []Product) (Message, bool) {
	if products == nil {
		products = []Product{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.messages {
		if c.messages[i].ID == id {
			c.messages[i].Content = content
			c.messages[i].Products = products
			return c.messages[i], true
		}
	}
	return Message{}, false
}

func (c *Conversation) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

type ConversationStore struct {
	mu   sync.Mutex
	byID map[string]*Conversation
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{byID: make(map[string]*Conversation)}
}

// GetOrCreate returns the conversation with the given ID, creating it when the
// ID is empty or unknown. Unknown IDs get a fresh conversation under a new ID
// rather than trusting client-supplied identifiers.
func (s *ConversationStore) GetOrCreate(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if c, ok := s.byID[id]; ok {
			return c
		}
	}
	c := newConversation(uuid.NewString())
	s.byID[c.ID] = c
	return c
}
