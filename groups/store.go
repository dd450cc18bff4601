package groups

import (
	"context"

	"campushub/db"
	"campushub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store isolates the handlers from the backing collections so the
// multi-document write sequences can be exercised in tests. Lookups that
// can legitimately miss return (nil, nil).
type Store interface {
	RefByUID(ctx context.Context, uid string) (*models.GroupRef, error)
	GroupByID(ctx context.Context, groupID string) (*models.Group, error)
	GroupByCode(ctx context.Context, code string) (*models.Group, error)
	GroupByCreator(ctx context.Context, uid string) (*models.Group, error)
	Student(ctx context.Context, uid string) (*models.Student, error)
	Members(ctx context.Context, groupID string) ([]models.GroupMember, error)
	InsertGroup(ctx context.Context, g models.Group) error
	InsertMember(ctx context.Context, m models.GroupMember) error
	InsertRef(ctx context.Context, ref models.GroupRef) error
	SetLeader(ctx context.Context, groupID, uid string, leader bool) error
	DeleteMember(ctx context.Context, groupID, uid string) (bool, error)
	DeleteRef(ctx context.Context, uid string) error
	DeleteGroup(ctx context.Context, groupID string) error
}

var store Store = mongoStore{}

type mongoStore struct{}

func (mongoStore) RefByUID(ctx context.Context, uid string) (*models.GroupRef, error) {
	var ref models.GroupRef
	err := db.StudentGroupsCollection.FindOne(ctx, bson.M{"uid": uid}).Decode(&ref)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (mongoStore) GroupByID(ctx context.Context, groupID string) (*models.Group, error) {
	var group models.Group
	err := db.GroupsCollection.FindOne(ctx, bson.M{"groupid": groupID}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (mongoStore) GroupByCode(ctx context.Context, code string) (*models.Group, error) {
	var group models.Group
	err := db.GroupsCollection.FindOne(ctx, bson.M{"code": code}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (mongoStore) GroupByCreator(ctx context.Context, uid string) (*models.Group, error) {
	var group models.Group
	err := db.GroupsCollection.FindOne(ctx, bson.M{"createdBy": uid}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (mongoStore) Student(ctx context.Context, uid string) (*models.Student, error) {
	var student models.Student
	if err := db.StudentsCollection.FindOne(ctx, bson.M{"userid": uid}).Decode(&student); err != nil {
		return nil, err
	}
	return &student, nil
}

func (mongoStore) Members(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	cursor, err := db.GroupMembersCollection.Find(ctx, bson.M{"groupid": groupID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []models.GroupMember
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (mongoStore) InsertGroup(ctx context.Context, g models.Group) error {
	_, err := db.GroupsCollection.InsertOne(ctx, g)
	return err
}

func (mongoStore) InsertMember(ctx context.Context, m models.GroupMember) error {
	_, err := db.GroupMembersCollection.InsertOne(ctx, m)
	return err
}

func (mongoStore) InsertRef(ctx context.Context, ref models.GroupRef) error {
	_, err := db.StudentGroupsCollection.InsertOne(ctx, ref)
	return err
}

func (mongoStore) SetLeader(ctx context.Context, groupID, uid string, leader bool) error {
	_, err := db.GroupMembersCollection.UpdateOne(ctx,
		bson.M{"groupid": groupID, "uid": uid},
		bson.M{"$set": bson.M{"leader": leader}})
	return err
}

func (mongoStore) DeleteMember(ctx context.Context, groupID, uid string) (bool, error) {
	result, err := db.GroupMembersCollection.DeleteOne(ctx, bson.M{"groupid": groupID, "uid": uid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (mongoStore) DeleteRef(ctx context.Context, uid string) error {
	_, err := db.StudentGroupsCollection.DeleteOne(ctx, bson.M{"uid": uid})
	return err
}

func (mongoStore) DeleteGroup(ctx context.Context, groupID string) error {
	_, err := db.GroupsCollection.DeleteOne(ctx, bson.M{"groupid": groupID})
	return err
}
