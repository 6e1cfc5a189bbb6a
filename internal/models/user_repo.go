package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProfileRepo is the persistence boundary for the profile aggregate.
// Sub-collection mutations use atomic array operators server-side, so two
// concurrent appends to the same profile both land instead of racing on a
// whole-document rewrite.
type ProfileRepo interface {
	CreateProfile(ctx context.Context, profile *Profile) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Profile, error)
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	DeleteProfile(ctx context.Context, id primitive.ObjectID) (*Profile, error)
	PushSubEntry(ctx context.Context, id primitive.ObjectID, field string, entry interface{}) (*Profile, error)
	PullSubEntry(ctx context.Context, id primitive.ObjectID, field string, subID primitive.ObjectID) (*Profile, error)
	SetSubEntryFields(ctx context.Context, id primitive.ObjectID, field string, subID primitive.ObjectID, set bson.M) (*Profile, error)
}

// EnsureIndexes creates the unique email index. Email uniqueness is enforced
// here, not in handler logic.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return err
	}

	_, err = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CreateProfile(ctx context.Context, profile *Profile) (primitive.ObjectID, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}

	_, err = col.InsertOne(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateEmail
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert profile: %v", err)
	}

	return profile.ID, nil
}

func (mdb *MongodbRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by ID: %v", err)
	}

	return &profile, nil
}

func (mdb *MongodbRepo) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := col.FindOne(ctx, bson.M{"email": email}).Decode(&profile); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile by email: %v", err)
	}

	return &profile, nil
}

func (mdb *MongodbRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return err
	}

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update profile: %v", err)
	}
	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (mdb *MongodbRepo) DeleteProfile(ctx context.Context, id primitive.ObjectID) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	var removed Profile
	if err := col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&removed); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to delete profile: %v", err)
	}

	return &removed, nil
}

func (mdb *MongodbRepo) PushSubEntry(ctx context.Context, id primitive.ObjectID, field string, entry interface{}) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Profile
	err = col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{field: entry}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to push %s entry: %v", field, err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) PullSubEntry(ctx context.Context, id primitive.ObjectID, field string, subID primitive.ObjectID) (*Profile, error) {
	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	// Filtering on the sub-entry id distinguishes "profile missing" from
	// "sub-entry missing" below.
	filter := bson.M{"_id": id, field + "._id": subID}
	update := bson.M{"$pull": bson.M{field: bson.M{"_id": subID}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Profile
	err = col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mdb.missingKind(ctx, col, id)
		}
		return nil, fmt.Errorf("failed to remove %s entry: %v", field, err)
	}

	return &updated, nil
}

func (mdb *MongodbRepo) SetSubEntryFields(ctx context.Context, id primitive.ObjectID, field string, subID primitive.ObjectID, set bson.M) (*Profile, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	col, err := mdb.GetCollection(ctx, ProfileColName)
	if err != nil {
		return nil, err
	}

	positional := bson.M{}
	for k, v := range set {
		positional[fmt.Sprintf("%s.$.%s", field, k)] = v
	}

	filter := bson.M{"_id": id, field + "._id": subID}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Profile
	err = col.FindOneAndUpdate(ctx, filter, bson.M{"$set": positional}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mdb.missingKind(ctx, col, id)
		}
		return nil, fmt.Errorf("failed to update %s entry: %v", field, err)
	}

	return &updated, nil
}

// missingKind reports whether a failed sub-entry match was caused by the
// profile itself being absent or only the sub-entry.
func (mdb *MongodbRepo) missingKind(ctx context.Context, col *mongo.Collection, id primitive.ObjectID) error {
	count, err := col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to check profile existence: %v", err)
	}
	if count == 0 {
		return ErrProfileNotFound
	}
	return ErrSubEntryNotFound
}
