// Package flash carries one-shot status messages across redirects via the
// cookie session.
package flash

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Message is a transient status shown once on the next rendered page.
// Category is a bootstrap-style alert class: success, warning or danger.
type Message struct {
	Category string
	Text     string
}

// Add queues a message for the next rendered page.
func Add(c *gin.Context, category, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(category + "|" + text)
	_ = sess.Save()
}

// Pop drains and returns all queued messages in insertion order.
func Pop(c *gin.Context) []Message {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save() // reading flashes consumes them; persist the drained session

	msgs := make([]Message, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		category, text, found := strings.Cut(s, "|")
		if !found {
			category, text = "success", s
		}
		msgs = append(msgs, Message{Category: category, Text: text})
	}
	return msgs
}
