package services

// ServiceContainer bundles every service for dependency injection into
// the handler layer.
type ServiceContainer struct {
	MemberService      MemberService
	PuppyService       PuppyService
	EnvironmentService EnvironmentService
	PostService        PostService
	InquiryService     InquiryService
	PhotoService       PhotoService
}
