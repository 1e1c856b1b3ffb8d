package registration

import "fmt"

// Course identifies one of the fixed set of courses open for enrollment.
// The string value is the wire code sent to the form endpoint.
type Course string

const (
	CourseComputerScience Course = "computer-science"
	CourseMathematics     Course = "mathematics"
	CoursePhysics         Course = "physics"
	CourseChemistry       Course = "chemistry"
	CourseBiology         Course = "biology"
	CourseEngineering     Course = "engineering"
)

// courseLabels maps each course code to its display label.
// The mapping is total and one-to-one over the six defined codes.
var courseLabels = map[Course]string{
	CourseComputerScience: "Computer Science",
	CourseMathematics:     "Mathematics",
	CoursePhysics:         "Physics",
	CourseChemistry:       "Chemistry",
	CourseBiology:         "Biology",
	CourseEngineering:     "Engineering",
}

// Courses returns the enumerated courses in their canonical display order.
func Courses() []Course {
	return []Course{
		CourseComputerScience,
		CourseMathematics,
		CoursePhysics,
		CourseChemistry,
		CourseBiology,
		CourseEngineering,
	}
}

// Label returns the human-readable display label for the course.
// Unrecognized codes render no label (empty string).
func (c Course) Label() string {
	return courseLabels[c]
}

// IsValid reports whether c is one of the six defined course codes.
func (c Course) IsValid() bool {
	_, ok := courseLabels[c]
	return ok
}

// ParseCourse converts a raw course code into a Course.
// Only the six defined codes are accepted.
func ParseCourse(s string) (Course, error) {
	c := Course(s)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown course %q (valid: %v)", s, Courses())
	}
	return c, nil
}

// Registration represents one student's validated submission.
//
// Struct tags serve two purposes:
//
//  1. json:"..." is the wire format posted to the form endpoint
//     (lowercase keys: name, age, email, course).
//
//  2. validate:"..." holds the rules checked by the go-playground/validator
//     package. These are the complete field constraints; there are no
//     cross-field rules.
type Registration struct {
	Name   string `json:"name"   validate:"min=2"`
	Age    int    `json:"age"    validate:"gte=16,lte=100"`
	Email  string `json:"email"  validate:"required,email"`
	Course Course `json:"course" validate:"required,oneof=computer-science mathematics physics chemistry biology engineering"`
}
