package roles

import (
	"testing"

	"campushub/models"
)

func TestStudentDetailsComplete(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
		want    bool
	}{
		{"roll number and branch", models.Student{RollNo: "R1", Branch: "CSE"}, true},
		{"missing roll number", models.Student{Branch: "CSE"}, false},
		{"missing branch", models.Student{RollNo: "R1"}, false},
		{"fresh account", models.Student{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StudentDetailsComplete(tt.student); got != tt.want {
				t.Errorf("StudentDetailsComplete() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHostDetailsComplete(t *testing.T) {
	if HostDetailsComplete(models.Host{}) {
		t.Error("host without organization reported complete")
	}
	if !HostDetailsComplete(models.Host{Organization: "Tech Committee"}) {
		t.Error("host with organization reported incomplete")
	}
}

func TestAdminDetailsComplete(t *testing.T) {
	if AdminDetailsComplete(models.Admin{}) {
		t.Error("admin without department reported complete")
	}
	if !AdminDetailsComplete(models.Admin{Department: "Student Affairs"}) {
		t.Error("admin with department reported incomplete")
	}
}
