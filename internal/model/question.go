package model

// Question is a single catalog entry. The catalog is immutable after startup;
// id is unique within the catalog and the slice order is display order.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Option is one selectable answer. Value tags the option with a culture type.
// The reference catalog carries four options per question, but nothing in the
// contract enforces a count.
type Option struct {
	Value    CultureType `json:"value"`
	Text     string      `json:"text"`
	Subtitle string      `json:"subtitle"`
}
