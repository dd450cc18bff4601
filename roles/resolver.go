package roles

import (
	"context"
	"fmt"
	"time"

	"campushub/db"
	"campushub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Resolve determines which role record governs an account. The student
// record is canonical and holds the role pointer; host/admin records are
// created on first resolve after a role change, copying the baseline
// identity fields over.
func Resolve(ctx context.Context, userID string) (models.RoleRouting, error) {
	var student models.Student
	err := db.StudentsCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&student)
	if err != nil {
		return models.RoleRouting{}, fmt.Errorf("failed to load student record: %w", err)
	}

	switch student.Role {
	case "host":
		var host models.Host
		err := db.HostsCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&host)
		if err == mongo.ErrNoDocuments {
			host = models.Host{
				UserID:    student.UserID,
				Email:     student.Email,
				FirstName: student.FirstName,
				LastName:  student.LastName,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if _, err := db.HostsCollection.InsertOne(ctx, host); err != nil {
				return models.RoleRouting{}, fmt.Errorf("failed to create host record: %w", err)
			}
			return models.RoleRouting{Role: "host", DetailsComplete: false}, nil
		} else if err != nil {
			return models.RoleRouting{}, fmt.Errorf("failed to load host record: %w", err)
		}
		return models.RoleRouting{Role: "host", DetailsComplete: HostDetailsComplete(host)}, nil

	case "admin":
		var admin models.Admin
		err := db.AdminsCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&admin)
		if err == mongo.ErrNoDocuments {
			admin = models.Admin{
				UserID:    student.UserID,
				Email:     student.Email,
				FirstName: student.FirstName,
				LastName:  student.LastName,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			if _, err := db.AdminsCollection.InsertOne(ctx, admin); err != nil {
				return models.RoleRouting{}, fmt.Errorf("failed to create admin record: %w", err)
			}
			return models.RoleRouting{Role: "admin", DetailsComplete: false}, nil
		} else if err != nil {
			return models.RoleRouting{}, fmt.Errorf("failed to load admin record: %w", err)
		}
		return models.RoleRouting{Role: "admin", DetailsComplete: AdminDetailsComplete(admin)}, nil

	default:
		return models.RoleRouting{Role: "student", DetailsComplete: StudentDetailsComplete(student)}, nil
	}
}

// Required-field checks deciding dashboard vs details form after login.

func StudentDetailsComplete(s models.Student) bool {
	return s.RollNo != "" && s.Branch != ""
}

func HostDetailsComplete(h models.Host) bool {
	return h.Organization != ""
}

func AdminDetailsComplete(a models.Admin) bool {
	return a.Department != ""
}
