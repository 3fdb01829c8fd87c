// Package news holds the portal announcements office staff publish for
// citizens (office hours, new procedures, outages).
package news

import "time"

// Announcement is one published portal notice.
type Announcement struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Lang      string    `json:"lang"`
	CreatedAt time.Time `json:"createdAt"`
}
