package registration

import (
	"encoding/json"
	"testing"
)

// TestCourseLabels tests that the code-to-label mapping is total and
// one-to-one over the six defined codes
func TestCourseLabels(t *testing.T) {
	courses := Courses()
	if len(courses) != 6 {
		t.Fatalf("Courses() returned %d courses, want 6", len(courses))
	}

	seen := make(map[string]Course)
	for _, course := range courses {
		label := course.Label()
		if label == "" {
			t.Errorf("Course %q has no label", course)
		}
		if prev, dup := seen[label]; dup {
			t.Errorf("Label %q is shared by %q and %q", label, prev, course)
		}
		seen[label] = course
	}
}

// TestCourseLabelUnknown tests that unrecognized codes render no label
func TestCourseLabelUnknown(t *testing.T) {
	if label := Course("astrology").Label(); label != "" {
		t.Errorf("Label() for unknown course = %q, want empty", label)
	}
	if label := Course("").Label(); label != "" {
		t.Errorf("Label() for empty course = %q, want empty", label)
	}
}

// TestParseCourse tests course code parsing
func TestParseCourse(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    Course
		wantErr bool
	}{
		{"Computer science", "computer-science", CourseComputerScience, false},
		{"Mathematics", "mathematics", CourseMathematics, false},
		{"Physics", "physics", CoursePhysics, false},
		{"Chemistry", "chemistry", CourseChemistry, false},
		{"Biology", "biology", CourseBiology, false},
		{"Engineering", "engineering", CourseEngineering, false},
		{"Empty", "", "", true},
		{"Unknown", "astronomy", "", true},
		{"Label instead of code", "Computer Science", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCourse(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCourse(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCourse(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

// TestRegistrationJSON tests the wire format posted to the endpoint
func TestRegistrationJSON(t *testing.T) {
	rec := Registration{
		Name:   "Jo",
		Age:    20,
		Email:  "jo@example.com",
		Course: CoursePhysics,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if decoded["name"] != "Jo" {
		t.Errorf("name = %v, want Jo", decoded["name"])
	}
	if decoded["age"] != float64(20) {
		t.Errorf("age = %v, want 20", decoded["age"])
	}
	if decoded["email"] != "jo@example.com" {
		t.Errorf("email = %v, want jo@example.com", decoded["email"])
	}
	if decoded["course"] != "physics" {
		t.Errorf("course = %v, want physics", decoded["course"])
	}
	if len(decoded) != 4 {
		t.Errorf("wire object has %d keys, want 4", len(decoded))
	}
}
