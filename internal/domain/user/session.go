package user

import "strings"

// Session is the authenticated user as remembered for one visitor. It never expires on its own.
type Session struct {
	id         string
	email      string
	name       string
	surname    string
	nationalID string
	role       Role
}

func NewSession(id, email, name, surname, nationalID string, role Role) (*Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrMissingUserID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Session{
		id:         id,
		email:      strings.TrimSpace(email),
		name:       strings.TrimSpace(name),
		surname:    strings.TrimSpace(surname),
		nationalID: strings.TrimSpace(nationalID),
		role:       role,
	}, nil
}

func (s *Session) ID() string         { return s.id }
func (s *Session) Email() string      { return s.email }
func (s *Session) Name() string       { return s.name }
func (s *Session) Surname() string    { return s.surname }
func (s *Session) NationalID() string { return s.nationalID }
func (s *Session) Role() Role         { return s.role }
func (s *Session) IsAdmin() bool      { return s.role == RoleAdmin }

func (s *Session) FullName() string {
	return strings.TrimSpace(s.name + " " + s.surname)
}

// WithProfile returns a copy carrying edited profile fields; identity and role are kept.
func (s *Session) WithProfile(name, surname, email string) *Session {
	updated := *s
	updated.name = strings.TrimSpace(name)
	updated.surname = strings.TrimSpace(surname)
	updated.email = strings.TrimSpace(email)
	return &updated
}
