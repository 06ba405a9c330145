package handlers

import (
	"kennel_backend/internal/services"
	"kennel_backend/internal/validator"
)

// AppHandlers bundles every handler for route registration.
type AppHandlers struct {
	MemberHandler      *MemberHandler
	PuppyHandler       *PuppyHandler
	EnvironmentHandler *EnvironmentHandler
	PostHandler        *PostHandler
}

// NewAppHandlers wires handlers onto the service container.
func NewAppHandlers(v *validator.Validator, sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		MemberHandler:      NewMemberHandler(base, sc.MemberService),
		PuppyHandler:       NewPuppyHandler(base, sc.PuppyService, sc.InquiryService),
		EnvironmentHandler: NewEnvironmentHandler(base, sc.EnvironmentService),
		PostHandler:        NewPostHandler(base, sc.PostService),
	}
}
