package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/furkancak2r/vibe-track-insights/internal"
)

const moodEntriesCollection = "mood_entries"

// MongoStorage backs the repository with a mongo document collection. Ids are
// integers stored as the document _id; allocation takes the highest existing
// id plus one, which is not safe under concurrent writers. Known limitation
// of this backend, kept deliberately.
type MongoStorage struct {
	entries *mongo.Collection
	logger  internal.Logger
}

func NewMongoStorage(uri, database string, logger internal.Logger) (*MongoStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("failed to connect to mongo: %v", err)
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Errorf("failed to ping mongo: %v", err)
		return nil, err
	}

	return &MongoStorage{
		entries: client.Database(database).Collection(moodEntriesCollection),
		logger:  logger,
	}, nil
}

func (m *MongoStorage) nextMoodEntryID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var latest internal.MoodEntry
	err := m.entries.FindOne(ctx, bson.M{}, opts).Decode(&latest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		m.logger.Errorf("failed to find max mood entry id: %v", err)
		return 0, err
	}
	return latest.ID + 1, nil
}

func (m *MongoStorage) CreateMoodEntry(ctx context.Context, input internal.MoodEntryInput) (internal.MoodEntry, error) {
	// Same-day upsert: an entry already logged for this user and calendar day
	// is overwritten in place and keeps its id.
	dayStart, dayEnd := dayRange(input.Date)
	var existing internal.MoodEntry
	err := m.entries.FindOne(ctx, bson.M{
		"user_id": input.UserID,
		"date":    bson.M{"$gte": dayStart, "$lte": dayEnd},
	}).Decode(&existing)
	if err == nil {
		return m.UpdateMoodEntry(ctx, existing.ID, input)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		m.logger.Errorf("failed to check for same-day entry: %v", err)
		return internal.MoodEntry{}, err
	}

	id, err := m.nextMoodEntryID(ctx)
	if err != nil {
		return internal.MoodEntry{}, err
	}

	entry := internal.MoodEntry{
		ID:      id,
		UserID:  input.UserID,
		Date:    input.Date.UTC(),
		Mood:    input.Mood,
		Notes:   input.Notes,
		Factors: input.Factors,
	}
	if _, err := m.entries.InsertOne(ctx, entry); err != nil {
		m.logger.Errorf("failed to insert mood entry: %v", err)
		return internal.MoodEntry{}, err
	}
	return entry, nil
}

func (m *MongoStorage) UpdateMoodEntry(ctx context.Context, id int, input internal.MoodEntryInput) (internal.MoodEntry, error) {
	update := bson.M{"$set": bson.M{
		"user_id": input.UserID,
		"date":    input.Date.UTC(),
		"mood":    input.Mood,
		"notes":   input.Notes,
		"factors": input.Factors,
	}}
	res, err := m.entries.UpdateByID(ctx, id, update)
	if err != nil {
		m.logger.Errorf("failed to update mood entry %d: %v", id, err)
		return internal.MoodEntry{}, err
	}
	if res.MatchedCount == 0 {
		return internal.MoodEntry{}, ErrNotFound
	}

	return internal.MoodEntry{
		ID:      id,
		UserID:  input.UserID,
		Date:    input.Date.UTC(),
		Mood:    input.Mood,
		Notes:   input.Notes,
		Factors: input.Factors,
	}, nil
}

func (m *MongoStorage) GetMoodEntry(ctx context.Context, id int) (internal.MoodEntry, error) {
	var entry internal.MoodEntry
	err := m.entries.FindOne(ctx, bson.M{"_id": id}).Decode(&entry)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return internal.MoodEntry{}, ErrNotFound
	}
	if err != nil {
		m.logger.Errorf("failed to get mood entry %d: %v", id, err)
		return internal.MoodEntry{}, err
	}
	return entry, nil
}

func (m *MongoStorage) ListMoodEntries(ctx context.Context) ([]internal.MoodEntry, error) {
	cursor, err := m.entries.Find(ctx, bson.M{})
	if err != nil {
		m.logger.Errorf("failed to list mood entries: %v", err)
		return nil, err
	}
	return m.decodeEntries(ctx, cursor)
}

func (m *MongoStorage) ListMoodEntriesByMonth(ctx context.Context, yearMonth string) ([]internal.MoodEntry, error) {
	start, end, err := monthRange(yearMonth)
	if err != nil {
		return nil, err
	}
	return m.ListMoodEntriesByDateRange(ctx, start, end)
}

func (m *MongoStorage) ListMoodEntriesByDateRange(ctx context.Context, start, end time.Time) ([]internal.MoodEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := m.entries.Find(ctx, bson.M{
		"date": bson.M{"$gte": start, "$lte": end},
	}, opts)
	if err != nil {
		m.logger.Errorf("failed to query mood entries by date range: %v", err)
		return nil, err
	}
	return m.decodeEntries(ctx, cursor)
}

func (m *MongoStorage) decodeEntries(ctx context.Context, cursor *mongo.Cursor) ([]internal.MoodEntry, error) {
	entries := []internal.MoodEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		m.logger.Errorf("failed to decode mood entries: %v", err)
		return nil, err
	}
	return entries, nil
}

func (m *MongoStorage) DeleteMoodEntry(ctx context.Context, id int) (bool, error) {
	res, err := m.entries.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		m.logger.Errorf("failed to delete mood entry %d: %v", id, err)
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (m *MongoStorage) ResetMoodEntries(ctx context.Context) error {
	if _, err := m.entries.DeleteMany(ctx, bson.M{}); err != nil {
		m.logger.Errorf("failed to reset mood entries: %v", err)
		return err
	}
	return nil
}

// --- Compile-time assertions ---
var _ MoodEntryRepository = (*MongoStorage)(nil)
