package transport

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/fastygo/dashboard/domain"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const (
	minNameLength     = 2
	minPasswordLength = 6
	maxBioLength      = 200
)

type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// ValidateCreate checks a new task: title and due date are required, priority
// defaults to medium and status to todo.
func (r TaskRequest) ValidateCreate() (domain.TaskInput, error) {
	return r.validate(domain.StatusTodo)
}

// ValidateUpdate checks an edit. An omitted status stays empty so the stored
// one is kept.
func (r TaskRequest) ValidateUpdate() (domain.TaskInput, error) {
	return r.validate("")
}

func (r TaskRequest) validate(defaultStatus domain.Status) (domain.TaskInput, error) {
	errs := domain.FieldErrors{}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = domain.ErrTitleRequired.Message
	}

	var due domain.Date
	if strings.TrimSpace(r.DueDate) == "" {
		errs["dueDate"] = "Due date is required"
	} else if parsed, err := domain.ParseDate(r.DueDate); err != nil {
		errs["dueDate"] = "Invalid due date"
	} else {
		due = parsed
	}

	priority := domain.Priority(r.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	} else if !priority.IsValid() {
		errs["priority"] = "Unknown priority"
	}

	status := domain.Status(r.Status)
	if status == "" {
		status = defaultStatus
	} else if !status.IsValid() {
		errs["status"] = "Unknown status"
	}

	if err := errs.Err(); err != nil {
		return domain.TaskInput{}, err
	}
	return domain.TaskInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		Priority:    priority,
		DueDate:     due,
	}, nil
}

// DropRequest names the column a card was dropped on.
type DropRequest struct {
	Status string `json:"status"`
}

type NoteDraftRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

func (r NoteDraftRequest) Validate() (title, content *string, category *domain.Category, err error) {
	if r.Category != nil {
		c := domain.Category(*r.Category)
		if !c.IsValid() {
			return nil, nil, nil, domain.FieldErrors{"category": "Unknown category"}
		}
		category = &c
	}
	return r.Title, r.Content, category, nil
}

type InsertSyntaxRequest struct {
	Syntax string `json:"syntax"`
}

type NoteFilterRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

func (r NoteFilterRequest) Validate() error {
	if r.Category == "" || r.Category == "all" {
		return nil
	}
	if !domain.Category(r.Category).IsValid() {
		return domain.FieldErrors{"category": "Unknown category"}
	}
	return nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

func (r RegisterRequest) Validate() error {
	errs := domain.FieldErrors{}
	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case utf8.RuneCountInString(name) < minNameLength:
		errs["name"] = "Name must be at least 2 characters"
	}
	validateEmail(errs, r.Email, "Invalid email address")

	switch {
	case r.Password == "":
		errs["password"] = "Password is required"
	case len(r.Password) < minPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	}
	switch {
	case r.Confirm == "":
		errs["confirm"] = "Please confirm your password"
	case r.Confirm != r.Password:
		errs["confirm"] = "Passwords do not match"
	}
	return errs.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

func (r LoginRequest) Validate() error {
	errs := domain.FieldErrors{}
	validateEmail(errs, r.Email, "Invalid email address")
	if r.Password == "" {
		errs["password"] = "Password is required"
	}
	return errs.Err()
}

type ProfileRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}

func (r ProfileRequest) Validate() (domain.UserPatch, error) {
	errs := domain.FieldErrors{}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		switch {
		case name == "":
			errs["name"] = "Name is required"
		case utf8.RuneCountInString(name) < minNameLength:
			errs["name"] = "Name must be at least 2 characters"
		}
	}
	if r.Email != nil {
		validateEmail(errs, *r.Email, "Invalid email format")
	}
	if r.Bio != nil && utf8.RuneCountInString(*r.Bio) > maxBioLength {
		errs["bio"] = "Bio must be less than 200 characters"
	}
	if err := errs.Err(); err != nil {
		return domain.UserPatch{}, err
	}
	return domain.UserPatch{Name: r.Name, Email: r.Email, Avatar: r.Avatar, Bio: r.Bio}, nil
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

func validateEmail(errs domain.FieldErrors, email, invalid string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = invalid
	}
}
