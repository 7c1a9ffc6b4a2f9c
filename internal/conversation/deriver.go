// Package conversation groups a user's flat message log into
// conversation threads for the inbox view. Derivation is a pure
// function over its inputs: it performs no I/O and keeps no state
// between calls.
package conversation

import (
	"sort"

	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/rs/zerolog"
)

// Key identifies one conversation thread: the counterpart user plus
// an optional property context. A missing property is its own
// equivalence class and never equals a concrete property id.
type Key struct {
	CounterpartID uint64
	PropertyID    uint64
	HasProperty   bool
}

// KeyFor computes the thread key of a message relative to the viewer
func KeyFor(viewerID uint64, msg domain.Message) Key {
	counterpart := msg.FromUserID
	if msg.FromUserID == viewerID {
		counterpart = msg.ToUserID
	}
	k := Key{CounterpartID: counterpart}
	if msg.PropertyID != nil {
		k.PropertyID = *msg.PropertyID
		k.HasProperty = true
	}
	return k
}

// Conversation is a derived, non-persisted thread between the viewer
// and one counterpart, optionally scoped to one property. Display
// fields are empty until filled by Enrich.
type Conversation struct {
	CounterpartID          uint64           `json:"counterpart_id"`
	CounterpartDisplayName string           `json:"counterpart_display_name,omitempty"`
	PropertyID             *uint64          `json:"property_id,omitempty"`
	PropertyDisplayTitle   *string          `json:"property_display_title,omitempty"`
	Messages               []domain.Message `json:"messages"`
	LastMessage            domain.Message   `json:"last_message"`
}

// Derive groups messages into conversations for the given viewer.
//
// Every message must involve the viewer as sender or recipient and
// must have distinct participants. Rows violating either rule are
// malformed store data: they are skipped with a logged warning so one
// bad row cannot hide an otherwise valid inbox.
//
// Conversations are ordered by last-message time descending, ties
// broken by counterpart id ascending. Within a conversation messages
// are chronological, ties broken by id ascending. A message's id is
// assigned monotonically by the store, so on equal timestamps the
// larger id is the later write.
func Derive(viewerID uint64, messages []domain.Message, log *zerolog.Logger) []Conversation {
	byKey := make(map[Key]*Conversation)
	var order []Key

	for _, msg := range messages {
		if msg.FromUserID == msg.ToUserID {
			warn(log, msg, "message has identical participants, skipping")
			continue
		}
		if msg.FromUserID != viewerID && msg.ToUserID != viewerID {
			warn(log, msg, "message does not involve viewer, skipping")
			continue
		}

		key := KeyFor(viewerID, msg)
		conv, ok := byKey[key]
		if !ok {
			conv = &Conversation{
				CounterpartID: key.CounterpartID,
				PropertyID:    msg.PropertyID,
				LastMessage:   msg,
			}
			byKey[key] = conv
			order = append(order, key)
		}

		conv.Messages = append(conv.Messages, msg)
		if newerThan(msg, conv.LastMessage) {
			conv.LastMessage = msg
		}
	}

	result := make([]Conversation, 0, len(order))
	for _, key := range order {
		conv := byKey[key]
		sort.SliceStable(conv.Messages, func(i, j int) bool {
			a, b := conv.Messages[i], conv.Messages[j]
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.ID < b.ID
		})
		result = append(result, *conv)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.LastMessage.CreatedAt.Equal(b.LastMessage.CreatedAt) {
			return a.LastMessage.CreatedAt.After(b.LastMessage.CreatedAt)
		}
		return a.CounterpartID < b.CounterpartID
	})

	return result
}

// newerThan reports whether a should replace b as the last message.
// Equal timestamps fall back to id: the larger id is the later write.
func newerThan(a, b domain.Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func warn(log *zerolog.Logger, msg domain.Message, reason string) {
	if log == nil {
		return
	}
	log.Warn().
		Uint64("message_id", msg.ID).
		Uint64("from_user_id", msg.FromUserID).
		Uint64("to_user_id", msg.ToUserID).
		Msg(reason)
}
