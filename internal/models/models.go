package models

import "time"

// Request/document models for every portfolio resource. The `binding` tags on
// the create/update payloads are the single declarative place where field
// shapes and value constraints live; handlers bind against these before any
// document touches the store. Server-assigned fields (id, timestamps, read
// flag) deliberately never appear on payload types.

// PersonalInfo is the singleton "about me" document.
type PersonalInfo struct {
	Name        string    `json:"name" bson:"name" binding:"required"`
	Title       string    `json:"title" bson:"title" binding:"required"`
	Description string    `json:"description" bson:"description" binding:"required"`
	Email       string    `json:"email" bson:"email" binding:"required,email"`
	Phone       string    `json:"phone" bson:"phone"`
	Location    string    `json:"location" bson:"location"`
	Github      string    `json:"github" bson:"github"`
	Linkedin    string    `json:"linkedin" bson:"linkedin"`
	Twitter     string    `json:"twitter" bson:"twitter"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// ProjectMetric is a headline number shown on a project card (e.g. "95%" accuracy).
type ProjectMetric struct {
	Label string `json:"label" bson:"label" binding:"required"`
	Value string `json:"value" bson:"value" binding:"required"`
}

// ProjectCreate is the client-supplied payload for creating or fully
// replacing a project.
type ProjectCreate struct {
	Title        string          `json:"title" bson:"title" binding:"required"`
	Description  string          `json:"description" bson:"description" binding:"required"`
	Technologies []string        `json:"technologies" bson:"technologies" binding:"required"`
	Github       string          `json:"github" bson:"github" binding:"required"`
	Demo         string          `json:"demo" bson:"demo"`
	Featured     bool            `json:"featured" bson:"featured"`
	Metrics      []ProjectMetric `json:"metrics" bson:"metrics" binding:"dive"`
}

// WorkExperienceCreate is the payload for work-experience entries. Logo and
// color are optional presentation hints used by the frontend timeline.
type WorkExperienceCreate struct {
	Title        string   `json:"title" bson:"title" binding:"required"`
	Company      string   `json:"company" bson:"company" binding:"required"`
	Period       string   `json:"period" bson:"period" binding:"required"`
	Description  string   `json:"description" bson:"description" binding:"required"`
	Technologies []string `json:"technologies" bson:"technologies" binding:"required"`
	Logo         string   `json:"logo" bson:"logo"`
	Color        string   `json:"color" bson:"color"`
}

// TestimonialCreate is the payload for testimonials; rating is constrained to 1..5.
type TestimonialCreate struct {
	Name     string `json:"name" bson:"name" binding:"required"`
	Position string `json:"position" bson:"position" binding:"required"`
	Company  string `json:"company" bson:"company" binding:"required"`
	Content  string `json:"content" bson:"content" binding:"required"`
	Rating   int    `json:"rating" bson:"rating" binding:"required,min=1,max=5"`
}

// Skill is one entry in the skills singleton; level is a 0..100 percentage.
type Skill struct {
	Name  string `json:"name" bson:"name" binding:"required"`
	Level int    `json:"level" bson:"level" binding:"min=0,max=100"`
}

// ApproachItem is one step of the "how I work" singleton list.
type ApproachItem struct {
	ID          string `json:"id" bson:"id" binding:"required"`
	Title       string `json:"title" bson:"title" binding:"required"`
	Description string `json:"description" bson:"description" binding:"required"`
}

// DashboardMetric is a headline stat shown on the dashboard.
type DashboardMetric struct {
	Label string `json:"label" bson:"label" binding:"required"`
	Value string `json:"value" bson:"value" binding:"required"`
}

// DashboardMetricsDocument is the wrapped singleton payload for PUT /metrics.
type DashboardMetricsDocument struct {
	Metrics []DashboardMetric `json:"metrics" bson:"metrics" binding:"required,dive"`
}

// Certification is one certification entry.
type Certification struct {
	Title        string `json:"title" bson:"title" binding:"required"`
	Issuer       string `json:"issuer" bson:"issuer" binding:"required"`
	Date         string `json:"date" bson:"date" binding:"required"`
	CredentialID string `json:"credential_id" bson:"credential_id"`
	URL          string `json:"url" bson:"url"`
	Image        string `json:"image" bson:"image"`
}

// CertificationsDocument is the wrapped singleton payload for PUT /certifications.
type CertificationsDocument struct {
	Certifications []Certification `json:"certifications" bson:"certifications" binding:"required,dive"`
}

// ContactMessageCreate is the one unauthenticated write payload in the whole
// API: the public contact form.
type ContactMessageCreate struct {
	Name        string `json:"name" bson:"name" binding:"required"`
	Email       string `json:"email" bson:"email" binding:"required,email"`
	Message     string `json:"message" bson:"message" binding:"required"`
	ProjectType string `json:"projectType" bson:"projectType"`
}

// LoginRequest carries the shared admin password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}
