package registration

import (
	"testing"
)

// validCandidate returns a candidate that passes every rule
func validCandidate() Candidate {
	return Candidate{
		Name:   "Jo",
		Age:    "20",
		Email:  "jo@example.com",
		Course: "physics",
	}
}

// TestValidateAccepts tests the acceptance boundary of the full schema
func TestValidateAccepts(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Candidate)
		wantValid bool
	}{
		{"Valid: all fields", func(c *Candidate) {}, true},
		{"Valid: name exactly 2 chars", func(c *Candidate) { c.Name = "Al" }, true},
		{"Valid: age lower bound", func(c *Candidate) { c.Age = "16" }, true},
		{"Valid: age upper bound", func(c *Candidate) { c.Age = "100" }, true},
		{"Invalid: name 1 char", func(c *Candidate) { c.Name = "J" }, false},
		{"Invalid: name empty", func(c *Candidate) { c.Name = "" }, false},
		{"Invalid: age 15", func(c *Candidate) { c.Age = "15" }, false},
		{"Invalid: age 101", func(c *Candidate) { c.Age = "101" }, false},
		{"Invalid: age empty (sentinel 0)", func(c *Candidate) { c.Age = "" }, false},
		{"Invalid: age not a number", func(c *Candidate) { c.Age = "twenty" }, false},
		{"Invalid: email missing @", func(c *Candidate) { c.Email = "jo.example.com" }, false},
		{"Invalid: email empty", func(c *Candidate) { c.Email = "" }, false},
		{"Invalid: course empty", func(c *Candidate) { c.Course = "" }, false},
		{"Invalid: course unknown", func(c *Candidate) { c.Course = "astrology" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			_, errs := Validate(c)
			if (len(errs) == 0) != tt.wantValid {
				t.Errorf("Validate(%+v) errors = %v, wantValid %v", c, errs, tt.wantValid)
			}
		})
	}
}

// TestValidateRecord verifies the fully-typed record returned on success
func TestValidateRecord(t *testing.T) {
	rec, errs := Validate(validCandidate())
	if len(errs) != 0 {
		t.Fatalf("Validate() errors = %v, want none", errs)
	}

	if rec.Name != "Jo" {
		t.Errorf("Name = %q, want Jo", rec.Name)
	}
	if rec.Age != 20 {
		t.Errorf("Age = %d, want 20", rec.Age)
	}
	if rec.Email != "jo@example.com" {
		t.Errorf("Email = %q, want jo@example.com", rec.Email)
	}
	if rec.Course != CoursePhysics {
		t.Errorf("Course = %q, want physics", rec.Course)
	}
}

// TestValidateErrorKinds tests the field-to-kind mapping
func TestValidateErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Candidate)
		field    string
		wantKind ErrorKind
	}{
		{"Short name", func(c *Candidate) { c.Name = "J" }, FieldName, ErrTooShort},
		{"Empty name", func(c *Candidate) { c.Name = "" }, FieldName, ErrTooShort},
		{"Young age", func(c *Candidate) { c.Age = "15" }, FieldAge, ErrOutOfRange},
		{"Old age", func(c *Candidate) { c.Age = "101" }, FieldAge, ErrOutOfRange},
		{"Non-numeric age", func(c *Candidate) { c.Age = "abc" }, FieldAge, ErrOutOfRange},
		{"Bad email", func(c *Candidate) { c.Email = "nope" }, FieldEmail, ErrInvalidFormat},
		{"No course", func(c *Candidate) { c.Course = "" }, FieldCourse, ErrRequired},
		{"Unknown course", func(c *Candidate) { c.Course = "alchemy" }, FieldCourse, ErrRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCandidate()
			tt.mutate(&c)

			_, errs := Validate(c)
			fieldErr, ok := errs[tt.field]
			if !ok {
				t.Fatalf("Validate() did not report an error for field %s (got %v)", tt.field, errs)
			}
			if fieldErr.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", fieldErr.Kind, tt.wantKind)
			}
			if fieldErr.Message == "" {
				t.Error("Message should not be empty")
			}
		})
	}
}

// TestValidateReportsAllFields tests that every failing field gets a message
func TestValidateReportsAllFields(t *testing.T) {
	_, errs := Validate(Candidate{})

	for _, field := range []string{FieldName, FieldAge, FieldEmail, FieldCourse} {
		if _, ok := errs[field]; !ok {
			t.Errorf("Validate(empty) missing error for field %s", field)
		}
	}
	if len(errs) != 4 {
		t.Errorf("Validate(empty) reported %d errors, want 4", len(errs))
	}
}

// TestValidateTrimsWhitespace tests that surrounding whitespace is ignored
func TestValidateTrimsWhitespace(t *testing.T) {
	c := validCandidate()
	c.Name = "  Jo  "
	c.Age = " 20 "
	c.Email = " jo@example.com "

	rec, errs := Validate(c)
	if len(errs) != 0 {
		t.Fatalf("Validate() errors = %v, want none", errs)
	}
	if rec.Name != "Jo" {
		t.Errorf("Name = %q, want trimmed Jo", rec.Name)
	}
	if rec.Age != 20 {
		t.Errorf("Age = %d, want 20", rec.Age)
	}
}

// TestValidateField tests single-field edit-time validation
func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"Valid name", FieldName, "Jo", false},
		{"Short name", FieldName, "J", true},
		{"Valid age", FieldAge, "20", false},
		{"Young age", FieldAge, "15", true},
		{"Non-numeric age", FieldAge, "x", true},
		{"Valid email", FieldEmail, "jo@example.com", false},
		{"Bad email", FieldEmail, "jo@", true},
		{"Valid course", FieldCourse, "physics", false},
		{"Empty course", FieldCourse, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fieldErr := ValidateField(tt.field, tt.value)
			if (fieldErr != nil) != tt.wantErr {
				t.Errorf("ValidateField(%s, %q) = %v, wantErr %v", tt.field, tt.value, fieldErr, tt.wantErr)
			}
		})
	}
}

// TestValidateIsPure tests that validation does not mutate its input
func TestValidateIsPure(t *testing.T) {
	c := validCandidate()
	before := c

	Validate(c)
	Validate(c)

	if c != before {
		t.Errorf("Validate mutated its input: %+v != %+v", c, before)
	}
}
