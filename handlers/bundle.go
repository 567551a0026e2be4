package handlers

// HandlerBundle groups the HTTP handlers for route registration.
type HandlerBundle struct {
	Scheduling *SchedulingHandler
	Admin      *AdminHandler
	Auth       *AuthHandler
}
