package chat

import (
	"sync"
	"testing"
)

func TestNewConversationSeedsGreeting(t *testing.T) {
	c := newConversation("conv-1")
	msgs := c.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	first := msgs[0]
	if first.ID != 1 || first.Sender != SenderAssistant || first.Content != greeting {
		t.Errorf("greeting message = %+v", first)
	}
	if first.Products == nil {
		t.Error("greeting Products is nil, want empty slice")
	}
}

func TestConversationAppendAndResolve(t *testing.T) {
	c := newConversation("conv-1")

	user := c.Append(SenderUser, "hello", nil)
	placeholder := c.Append(SenderAssistant, "", nil)
	if user.ID != 2 || placeholder.ID != 3 {
		t.Fatalf("ids = %d, %d; want 2, 3", user.ID, placeholder.ID)
	}

	resolved, ok := c.Resolve(placeholder.ID, "done", []Product{{Brand: "Arrow"}})
	if !ok {
		t.Fatal("Resolve returned false for known ID")
	}
	if resolved.ID != placeholder.ID || resolved.Content != "done" || len(resolved.Products) != 1 {
		t.Errorf("resolved = %+v", resolved)
	}

	msgs := c.Messages()
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[2].Content != "done" {
		t.Errorf("placeholder not replaced in place: %+v", msgs[2])
	}
}

func TestConversationResolveUnknownID(t *testing.T) {
	c := newConversation("conv-1")
	if _, ok := c.Resolve(99, "x", nil); ok {
		t.Error("Resolve returned true for unknown ID")
	}
}

func TestConversationConcurrentAppendsGetDistinctIDs(t *testing.T) {
	c := newConversation("conv-1")

	const n = 50
	ids := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- c.Append(SenderAssistant, "", nil).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate message ID %d", id)
		}
		seen[id] = true
	}
}

func TestConversationStoreGetOrCreate(t *testing.T) {
	store := NewConversationStore()

	created := store.GetOrCreate("")
	if created.ID == "" {
		t.Fatal("new conversation has empty ID")
	}

	same := store.GetOrCreate(created.ID)
	if same != created {
		t.Error("known ID did not return the existing conversation")
	}

	fresh := store.GetOrCreate("not-a-known-id")
	if fresh == created || fresh.ID == "not-a-known-id" {
		t.Errorf("unknown ID should get a fresh conversation under a new ID, got %q", fresh.ID)
	}
}
