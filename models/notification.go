package models

// NotificationVariant mirrors the two visual treatments the client renders.
type NotificationVariant string

const (
	VariantNormal      NotificationVariant = "normal"
	VariantDestructive NotificationVariant = "destructive"
)

// Notification is a fire-and-forget user-facing notice. No delivery result is
// ever consumed by the caller.
type Notification struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Variant     NotificationVariant `json:"variant"`
	Data        map[string]string   `json:"data,omitempty"`
}
