package models

// Note is the sole domain entity: a sticky note stored in the "notes"
// collection. ID is assigned by the store on insert and is empty before the
// first successful create.
type Note struct {
	ID          string `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string `bson:"title" json:"title"`
	Tagline     string `bson:"tagline" json:"tagline"`
	Description string `bson:"description" json:"description"`
	Pinned      bool   `bson:"pinned" json:"pinned"`
}

// NoteFields carries the editable content fields from the input form.
// Pinned is not part of the form; the pin toggle manages it separately.
type NoteFields struct {
	Title       string `json:"title"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}
