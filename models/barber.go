package models

// BarberProfile identifies a provider. Written only by the registration
// flow; the wizard and dashboard treat it as read-only.
type BarberProfile struct {
	Slug      string `bson:"slug" json:"slug"`
	Name      string `bson:"name" json:"name"`
	Specialty string `bson:"specialty" json:"specialty"`
	Bio       string `bson:"bio,omitempty" json:"bio,omitempty"`
	Image     string `bson:"image,omitempty" json:"image,omitempty"`
	Location  string `bson:"location,omitempty" json:"location,omitempty"`

	// Optional automation hooks. Webhook receives a best-effort POST of each
	// new reservation; FCMToken receives a push. Neither affects booking
	// outcome.
	Webhook  string `bson:"webhook,omitempty" json:"webhook,omitempty"`
	FCMToken string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// PlaceholderBarber is served when a slug has no stored profile yet. The
// booking page must stay usable with an incomplete backing store, so
// profile resolution degrades to this instead of failing.
func PlaceholderBarber(slug string) *BarberProfile {
	return &BarberProfile{
		Slug:      slug,
		Name:      "Evan Styles",
		Specialty: "Modern Fades",
		Bio:       "Precision grooming specialist.",
		Location:  "South William St, Dublin",
		Image:     "https://images.unsplash.com/photo-1503443207922-dff7d543fd0e?w=400&h=400&fit=crop",
	}
}
