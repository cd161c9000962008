package repository

import (
	"context"
	"errors"

	"notes-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteRepositoryInterface interface {
	FindAllNotes() ([]models.Note, error)
	InsertNote(fields models.NoteFields) (models.Note, error)
	UpdateNoteFields(id string, fields models.NoteFields) error
	UpdateNotePinned(id string, pinned bool) error
	DeleteNoteByID(id string) error
}

type NoteRepository struct {
	collection *mongo.Collection
}

func NewNoteRepository(collection *mongo.Collection) *NoteRepository {
	return &NoteRepository{collection: collection}
}

// noteDoc is the stored shape. Decoding into it validates the document at the
// repository boundary before it becomes a models.Note.
type noteDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Tagline     string             `bson:"tagline"`
	Description string             `bson:"description"`
	Pinned      bool               `bson:"pinned"`
}

func (d noteDoc) toNote() models.Note {
	return models.Note{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Tagline:     d.Tagline,
		Description: d.Description,
		Pinned:      d.Pinned,
	}
}

func (r *NoteRepository) FindAllNotes() ([]models.Note, error) {
	cursor, err := r.collection.Find(context.Background(), bson.M{})
	if err != nil {
		return nil, storeErr("find all", err)
	}
	var docs []noteDoc
	if err = cursor.All(context.Background(), &docs); err != nil {
		return nil, storeErr("find all", err)
	}
	notes := make([]models.Note, 0, len(docs))
	for _, doc := range docs {
		notes = append(notes, doc.toNote())
	}
	return notes, nil
}

// InsertNote sends the form fields plus pinned=false and returns the full
// note including the store-assigned id.
func (r *NoteRepository) InsertNote(fields models.NoteFields) (models.Note, error) {
	doc := bson.M{
		"title":       fields.Title,
		"tagline":     fields.Tagline,
		"description": fields.Description,
		"pinned":      false,
	}
	res, err := r.collection.InsertOne(context.Background(), doc)
	if err != nil {
		return models.Note{}, storeErr("insert", err)
	}
	objectID, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return models.Note{}, storeErr("insert", errors.New("unexpected inserted id type"))
	}
	return models.Note{
		ID:          objectID.Hex(),
		Title:       fields.Title,
		Tagline:     fields.Tagline,
		Description: fields.Description,
		Pinned:      false,
	}, nil
}

func (r *NoteRepository) UpdateNoteFields(id string, fields models.NoteFields) error {
	update := bson.M{"$set": bson.M{
		"title":       fields.Title,
		"tagline":     fields.Tagline,
		"description": fields.Description,
	}}
	return r.updateOne("update fields", id, update)
}

func (r *NoteRepository) UpdateNotePinned(id string, pinned bool) error {
	return r.updateOne("update pinned", id, bson.M{"$set": bson.M{"pinned": pinned}})
}

func (r *NoteRepository) updateOne(op, id string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr(op, err)
	}
	filter := bson.M{"_id": objectID}
	res, err := r.collection.UpdateOne(context.Background(), filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return storeErr(op, err)
	}
	if res.MatchedCount == 0 {
		return storeErr(op, ErrNoteNotFound)
	}
	return nil
}

// DeleteNoteByID surfaces a delete of an already-deleted id as an error
// rather than swallowing it.
func (r *NoteRepository) DeleteNoteByID(id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return storeErr("delete", err)
	}
	res, err := r.collection.DeleteOne(context.Background(), bson.M{"_id": objectID})
	if err != nil {
		return storeErr("delete", err)
	}
	if res.DeletedCount == 0 {
		return storeErr("delete", ErrNoteNotFound)
	}
	return nil
}
