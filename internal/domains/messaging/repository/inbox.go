package repository

//go:generate go run go.uber.org/mock/mockgen -source=./inbox.go -destination=../mocks/inbox_mock.go -package=mocks

import (
	"context"
	"errors"
	"slices"
	"sync"

	"hostdeck/internal/domains/messaging/catalog"
	"hostdeck/internal/domains/messaging/model"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrNotPending = errors.New("request is not pending")
)

// Inbox keeps one seeded mailbox per host, for the lifetime of the process.
type Inbox interface {
	Chats(ctx context.Context, owner string) ([]model.Chat, error)
	Chat(ctx context.Context, owner, chatID string) (model.Chat, error)
	AppendMessage(ctx context.Context, owner, chatID string, message model.Message) (model.Chat, error)
	// NextSuggestions returns the next window of reply suggestions for a chat.
	NextSuggestions(ctx context.Context, owner, chatID string) ([]string, error)
	Requests(ctx context.Context, owner string) ([]model.BookingRequest, error)
	// Decide moves a pending request to status. Decided requests yield ErrNotPending.
	Decide(ctx context.Context, owner, requestID string, status model.RequestStatus) (model.BookingRequest, error)
	AutoReply(ctx context.Context, owner string) (bool, error)
	SetAutoReply(ctx context.Context, owner string, enabled bool) (bool, error)
}

type mailbox struct {
	chats       []model.Chat
	requests    []model.BookingRequest
	autoReply   bool
	suggestions map[string]int
}

type inboxImpl struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	mailboxes map[string]*mailbox
}

func NewInbox(c *catalog.Catalog) Inbox {
	return &inboxImpl{
		catalog:   c,
		mailboxes: map[string]*mailbox{},
	}
}

func cloneChat(chat model.Chat) model.Chat {
	chat.Messages = slices.Clone(chat.Messages)

	return chat
}

func cloneRequest(req model.BookingRequest) model.BookingRequest {
	if req.PlatformSpecific != nil {
		specific := *req.PlatformSpecific
		req.PlatformSpecific = &specific
	}

	return req
}

// mailbox returns the mailbox of owner, seeding it on first use. Callers hold mu.
func (r *inboxImpl) mailbox(owner string) *mailbox {
	box, ok := r.mailboxes[owner]
	if ok {
		return box
	}

	box = &mailbox{
		chats:       make([]model.Chat, 0, len(r.catalog.Chats)),
		requests:    make([]model.BookingRequest, 0, len(r.catalog.Requests)),
		autoReply:   true,
		suggestions: map[string]int{},
	}

	for _, chat := range r.catalog.Chats {
		box.chats = append(box.chats, cloneChat(chat))
	}

	for _, req := range r.catalog.Requests {
		box.requests = append(box.requests, cloneRequest(req))
	}

	r.mailboxes[owner] = box

	return box
}

func (box *mailbox) chatIndex(chatID string) int {
	return slices.IndexFunc(box.chats, func(c model.Chat) bool { return c.ID == chatID })
}

func (r *inboxImpl) Chats(_ context.Context, owner string) ([]model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	box := r.mailbox(owner)

	res := make([]model.Chat, 0, len(box.chats))
	for _, chat := range box.chats {
		res = append(res, cloneChat(chat))
	}

	return res, nil
}

func (r *inboxImpl) Chat(_ context.Context, owner, chatID string) (model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	box := r.mailbox(owner)

	i := box.chatIndex(chatID)
	if i == -1 {
		return model.Chat{}, ErrNotFound
	}

	return cloneChat(box.chats[i]), nil
}

func (r *inboxImpl) AppendMessage(_ context.Context, owner, chatID string, message model.Message) (model.Chat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	box := r.mailbox(owner)

	i := box.chatIndex(chatID)
	if i == -1 {
		return model.Chat{}, ErrNotFound
	}

	box.chats[i].Messages = append(box.chats[i].Messages, message)
	box.chats[i].Preview = message.Text

	return cloneChat(box.chats[i]), nil
}

func (r *inboxImpl) NextSuggestions(_ context.Context, owner, chatID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	box := r.mailbox(owner)
	if box.chatIndex(chatID) == -1 {
		return nil, ErrNotFound
	}

	pool := r.catalog.Suggestions
	offset := box.suggestions[chatID]

	res := make([]string, 0, model.SuggestionCount)
	for i := range model.SuggestionCount {
		res = append(res, pool[(offset+i)%len(pool)])
	}

	box.suggestions[chatID] = (offset + model.SuggestionCount) % len(pool)

	return res, nil
}

func (r *inboxImpl) Requests(_ context.Context, owner string) ([]model.BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	box := r.mailbox(owner)

	res := make([]model.BookingRequest, 0, len(box.requests))
	for _, req := range box.requests {
		res = append(res, cloneRequest(req))
	}

	return res, nil
}

func (r *inboxImpl) Decide(_ context.Context, owner, requestID string, status model.RequestStatus) (model.BookingRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	box := r.mailbox(owner)

	i := slices.IndexFunc(box.requests, func(req model.BookingRequest) bool { return req.ID == requestID })
	if i == -1 {
		return model.BookingRequest{}, ErrNotFound
	}

	if box.requests[i].Status != model.RequestStatusPending {
		return cloneRequest(box.requests[i]), ErrNotPending
	}

	box.requests[i].Status = status

	return cloneRequest(box.requests[i]), nil
}

func (r *inboxImpl) AutoReply(_ context.Context, owner string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mailbox(owner).autoReply, nil
}

func (r *inboxImpl) SetAutoReply(_ context.Context, owner string, enabled bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mailbox(owner).autoReply = enabled

	return enabled, nil
}
