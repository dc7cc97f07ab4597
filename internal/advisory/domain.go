package advisory

import (
	"strings"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
)

// Attachment describes an uploaded image. The bytes are never kept.
type Attachment struct {
	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type,omitempty"`
}

// Query is one analysis request. It needs a description, an image, or both.
type Query struct {
	Kind  domain.ServiceKind
	Text  string
	Image *Attachment
}

func (q Query) empty() bool {
	return strings.TrimSpace(q.Text) == "" && (q.Image == nil || q.Image.Name == "")
}

// Card is one entry of the services catalog.
type Card struct {
	Kind        domain.ServiceKind `json:"kind"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
}

// Catalog lists the services in lang.
func Catalog(lang domain.Language) []Card {
	cards := make([]Card, 0, len(domain.ServiceKinds))
	for _, kind := range domain.ServiceKinds {
		c, ok := i18n.ServiceCard(kind)
		if !ok {
			continue
		}
		cards = append(cards, Card{
			Kind:        kind,
			Title:       i18n.MustResolve(c.Title, lang),
			Description: i18n.MustResolve(c.Description, lang),
		})
	}
	return cards
}
