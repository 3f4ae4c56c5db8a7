package socket

import (
	"github.com/Marga-Ghale/glam-studio-backend/internal/repository"
)

// Broadcaster provides high-level methods for broadcasting domain events to
// the admin feed. It satisfies the service layer's Broadcaster interface.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// InquiryCreated announces a new contact inquiry
func (b *Broadcaster) InquiryCreated(contact *repository.Contact) {
	b.hub.Broadcast(MessageInquiryCreated, contactPayload(contact))
}

// InquiryUpdated announces a status or read-state change on an inquiry
func (b *Broadcaster) InquiryUpdated(contact *repository.Contact) {
	b.hub.Broadcast(MessageInquiryUpdated, contactPayload(contact))
}

// PortfolioEvicted announces that the oldest item was removed to stay within
// the portfolio capacity limit
func (b *Broadcaster) PortfolioEvicted(item *repository.PortfolioItem) {
	b.hub.Broadcast(MessagePortfolioEvicted, map[string]interface{}{
		"id":       item.ID,
		"title":    item.Title,
		"type":     item.Type,
		"category": item.Category,
		"mediaUrl": item.MediaURL,
	})
}

func contactPayload(contact *repository.Contact) map[string]interface{} {
	return map[string]interface{}{
		"id":        contact.ID,
		"fullName":  contact.FullName,
		"phone":     contact.Phone,
		"eventDate": contact.EventDate,
		"eventType": contact.EventType,
		"status":    contact.Status,
		"isRead":    contact.IsRead,
	}
}
