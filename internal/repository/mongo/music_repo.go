package mongo

import (
	"context"
	"errors"
	"mindful/media-admin/internal/domain"
	"mindful/media-admin/internal/repository"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const musicCollectionName = "music"

// mongoMusicRepository implements repository.MusicRepository
type mongoMusicRepository struct {
	collection *mongo.Collection
}

// NewMongoMusicRepository creates a new Music repository backed by MongoDB.
func NewMongoMusicRepository(db *mongo.Database) repository.MusicRepository {
	return &mongoMusicRepository{
		collection: db.Collection(musicCollectionName),
	}
}

// Create inserts a new music track into the database.
func (r *mongoMusicRepository) Create(ctx context.Context, music *domain.Music) (primitive.ObjectID, error) {
	if music.Name == "" || music.Author == "" || music.Category == "" {
		return primitive.NilObjectID, errors.New("music name, author and category are required")
	}

	music.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	music.CreatedAt = now
	music.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, music)
	if err != nil {
		return primitive.NilObjectID, err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted ID")
	}

	return insertedID, nil
}

// GetByID retrieves a track by its ID.
func (r *mongoMusicRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Music, error) {
	var music domain.Music
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&music)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &music, nil
}

// GetAll retrieves every track in the library, newest first.
func (r *mongoMusicRepository) GetAll(ctx context.Context) ([]domain.Music, error) {
	var tracks []domain.Music

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &tracks); err != nil {
		return nil, err
	}

	if err = cursor.Err(); err != nil {
		return nil, err
	}

	return tracks, nil
}

// Update modifies the editable fields of an existing track.
func (r *mongoMusicRepository) Update(ctx context.Context, music *domain.Music) error {
	if music.ID == primitive.NilObjectID {
		return errors.New("music ID is required for update")
	}
	if music.Name == "" {
		return errors.New("music name cannot be empty")
	}

	filter := bson.M{"_id": music.ID}
	update := bson.M{
		"$set": bson.M{
			"music_name": music.Name,
			"author":     music.Author,
			"category":   music.Category,
			"updatedAt":  time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// SetFilePath records the object-storage reference for an uploaded track.
func (r *mongoMusicRepository) SetFilePath(ctx context.Context, id primitive.ObjectID, filePath string) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"file_path": filePath,
			"updatedAt": time.Now().UTC(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a track.
func (r *mongoMusicRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// EnsureMusicIndexes creates necessary indexes for the music collection.
func EnsureMusicIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "music_name", Value: "text"}, {Key: "author", Value: "text"}},
			Options: options.Index().SetName("music_text_search"),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
