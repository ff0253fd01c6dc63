package models

import "encoding/json"

// AnnouncementInput is the admin-supplied body. Any JSON object is accepted.
type AnnouncementInput map[string]interface{}

// Announcement is an admin broadcast. It is stored and pushed to connected
// clients but never read back through the API.
type Announcement struct {
	ID        string
	Body      map[string]interface{}
	CreatedAt string
}

// reservedAnnouncementKeys are assigned by the server and dropped from input.
var reservedAnnouncementKeys = map[string]bool{"_id": true, "id": true, "created_at": true}

// NewAnnouncement copies input into an announcement created at createdAt.
func NewAnnouncement(input AnnouncementInput, createdAt string) *Announcement {
	body := make(map[string]interface{}, len(input))
	for k, v := range input {
		if reservedAnnouncementKeys[k] {
			continue
		}
		body[k] = v
	}
	return &Announcement{Body: body, CreatedAt: createdAt}
}

// Document is the flat stored form: the body fields with created_at beside
// them. Backends add their own key.
func (a Announcement) Document() map[string]interface{} {
	doc := make(map[string]interface{}, len(a.Body)+1)
	for k, v := range a.Body {
		doc[k] = v
	}
	doc["created_at"] = a.CreatedAt
	return doc
}

func (a Announcement) MarshalJSON() ([]byte, error) {
	doc := a.Document()
	doc["_id"] = a.ID
	return json.Marshal(doc)
}
