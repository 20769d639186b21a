package chat

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"matchapi/internal/apperr"
	"matchapi/internal/model"
	"matchapi/internal/repository"
)

const topicPrefix = "chat:"

// deliveryBuffer bounds how far a slow consumer may lag before live
// delivery blocks on the pump goroutine.
const deliveryBuffer = 16

// Channel synchronizes chat messages between the store and live
// subscribers. Sends are persisted first; the store-assigned seq is the
// authoritative order, and subscribers (including the sender) only see a
// message once it round-trips through store and fan-out.
type Channel struct {
	repo   repository.MessageRepository
	pubsub PubSub
}

// NewChannel constructs a Channel over a message store and a fan-out transport.
func NewChannel(repo repository.MessageRepository, pubsub PubSub) *Channel {
	return &Channel{repo: repo, pubsub: pubsub}
}

func topicOf(conversationKey string) string { return topicPrefix + conversationKey }

// Send validates, persists and fans out one message. Blank text fails with
// a validation error and nothing is stored or published. There is no local
// optimistic echo: the sender's own subscription receives the message the
// same way every other subscriber does.
func (c *Channel) Send(ctx context.Context, conversationKey, senderID, text string) (*model.ChatMessage, error) {
	if conversationKey == "" {
		return nil, apperr.Validation("conversation key is required")
	}
	if senderID == "" {
		return nil, apperr.Validation("sender id is required")
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Validation("message text is empty")
	}

	stored, err := c.repo.Append(ctx, &model.ChatMessage{
		ID:              uuid.NewString(),
		ConversationKey: conversationKey,
		SenderID:        senderID,
		Body:            text,
	})
	if err != nil {
		return nil, apperr.Network("append message", err)
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, apperr.Network("encode message", err)
	}
	if err := c.pubsub.Publish(ctx, topicOf(conversationKey), payload); err != nil {
		// The row is persisted; subscribers pick it up from the snapshot
		// on their next subscribe. Report the degraded fan-out.
		return stored, apperr.Network("publish message", err)
	}
	return stored, nil
}

// Subscribe opens a live, cancellable feed for a conversation: every
// existing message once, in seq order, then each new message as it is
// persisted. Delivery is at-most-once per message id; replays from the
// transport are dropped. The caller owns the returned Subscription and
// must Cancel it; opening a replacement subscription for the same screen
// means cancelling the old one first.
func (c *Channel) Subscribe(ctx context.Context, conversationKey string) (*Subscription, error) {
	if conversationKey == "" {
		return nil, apperr.Validation("conversation key is required")
	}

	// Subscribe before snapshotting so no message falls between the two;
	// anything seen by both is deduplicated by id.
	feed, err := c.pubsub.Subscribe(ctx, topicOf(conversationKey))
	if err != nil {
		return nil, apperr.Network("subscribe", err)
	}

	snapshot, err := c.repo.ListByConversation(ctx, conversationKey)
	if err != nil {
		_ = feed.Close()
		return nil, apperr.Network("load conversation", err)
	}

	sub := &Subscription{
		out:  make(chan model.ChatMessage, deliveryBuffer),
		done: make(chan struct{}),
		feed: feed,
	}
	go sub.pump(snapshot)
	return sub, nil
}

// Subscription is one live feed over a conversation. Messages arrive on C
// in store order. Cancel is idempotent and safe to call from any
// goroutine; after it returns no new message is delivered.
type Subscription struct {
	out      chan model.ChatMessage
	done     chan struct{}
	feed     Subscriber
	cancelFn sync.Once
}

// C returns the delivery channel. It is closed after Cancel, or when the
// underlying feed ends.
func (s *Subscription) C() <-chan model.ChatMessage { return s.out }

// Cancel stops delivery and releases the underlying feed. Calling it more
// than once is a no-op.
func (s *Subscription) Cancel() {
	s.cancelFn.Do(func() {
		close(s.done)
		_ = s.feed.Close()
	})
}

func (s *Subscription) pump(snapshot []model.ChatMessage) {
	defer close(s.out)

	seen := make(map[string]struct{}, len(snapshot))
	for _, m := range snapshot {
		if !s.deliver(m, seen) {
			return
		}
	}
	for payload := range s.feed.Payloads() {
		var m model.ChatMessage
		if err := json.Unmarshal(payload, &m); err != nil {
			continue
		}
		if !s.deliver(m, seen) {
			return
		}
	}
}

// deliver pushes one message unless it was already delivered or the
// subscription is cancelled. Returns false once cancelled.
func (s *Subscription) deliver(m model.ChatMessage, seen map[string]struct{}) bool {
	if _, dup := seen[m.ID]; dup {
		return true
	}
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.out <- m:
		seen[m.ID] = struct{}{}
		return true
	case <-s.done:
		return false
	}
}
