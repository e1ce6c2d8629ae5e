package user

import (
	"errors"
	"sort"
	"strings"

	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/pkg/patch"
)

// FieldErrors maps an input field to the reason it was rejected.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Is(target error) bool {
	return target == errs.ErrDomainValidation
}

func (fe FieldErrors) add(field string, err error) {
	if err != nil {
		fe[field] = err.Error()
	}
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

type Registration struct {
	email      Email
	password   Password
	name       string
	surname    string
	nationalID NationalID
	adminKey   string
}

// NewRegistration validates every field and reports all failures at once.
func NewRegistration(email, password, name, surname, nationalID, adminKey string) (*Registration, error) {
	fe := FieldErrors{}

	e, err := NewEmail(email)
	fe.add("email", err)
	p, err := NewPassword(password)
	fe.add("password", err)
	n, err := NewNationalID(nationalID)
	fe.add("identificacion", err)

	name, surname = strings.TrimSpace(name), strings.TrimSpace(surname)
	if name == "" {
		fe.add("nombre", ErrMissingName)
	}
	if surname == "" {
		fe.add("apellido", ErrMissingName)
	}

	if err := fe.orNil(); err != nil {
		return nil, err
	}
	return &Registration{
		email:      e,
		password:   p,
		name:       name,
		surname:    surname,
		nationalID: n,
		adminKey:   strings.TrimSpace(adminKey),
	}, nil
}

func (r *Registration) Email() Email           { return r.email }
func (r *Registration) Password() Password     { return r.password }
func (r *Registration) Name() string           { return r.name }
func (r *Registration) Surname() string        { return r.surname }
func (r *Registration) NationalID() NationalID { return r.nationalID }
func (r *Registration) AdminKey() string       { return r.adminKey }

type ProfileUpdate struct {
	name     string
	surname  string
	email    Email
	password *Password
}

// NewProfileUpdate validates an edit of the caller's own profile. A nil password keeps the current one.
func NewProfileUpdate(name, surname, email string, password *string) (*ProfileUpdate, error) {
	fe := FieldErrors{}

	e, err := NewEmail(email)
	fe.add("email", err)

	var pw *Password
	if raw := patch.CoalesceString(password, ""); raw != "" {
		p, err := NewPassword(raw)
		fe.add("password", err)
		pw = &p
	}

	name, surname = strings.TrimSpace(name), strings.TrimSpace(surname)
	if name == "" || surname == "" {
		fe.add("nombre", ErrMissingName)
	}

	if err := fe.orNil(); err != nil {
		return nil, err
	}
	return &ProfileUpdate{name: name, surname: surname, email: e, password: pw}, nil
}

func (u *ProfileUpdate) Name() string        { return u.name }
func (u *ProfileUpdate) Surname() string     { return u.surname }
func (u *ProfileUpdate) Email() Email        { return u.email }
func (u *ProfileUpdate) Password() *Password { return u.password }

// AsFieldErrors exposes per-field detail for any error produced by this package.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
