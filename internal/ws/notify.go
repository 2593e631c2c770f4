package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// ProfileChangedEvent announces a successful mutation so connected pages
// can refresh. It carries nothing an unauthenticated GET would not return.
type ProfileChangedEvent struct {
	Type      string `json:"type"`
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	Email     string `json:"email"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyProfileChanged(entity, action, email string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	email = strings.ToLower(strings.TrimSpace(email))

	evt := ProfileChangedEvent{
		Type:      "profile_changed",
		Entity:    entity,
		Action:    action,
		Email:     email,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
